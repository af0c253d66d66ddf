package cli

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/claude-ci/claudectl/internal/protocol"
	"github.com/claude-ci/claudectl/internal/runner"
)

// newSchemaCommand creates "schema", which prints JSON Schemas for the
// artifacts claudectl emits so pipeline consumers can validate them.
func newSchemaCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of an emitted artifact",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var target interface{}
			switch kind {
			case "result":
				target = &protocol.ResultMessage{}
			case "outcome":
				target = &runner.Outcome{}
			default:
				return fmt.Errorf("unknown schema kind %q (expected result or outcome)", kind)
			}

			reflector := jsonschema.Reflector{DoNotReference: true}
			schema := reflector.Reflect(target)
			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "result", "Artifact to describe (result, outcome)")

	return cmd
}
