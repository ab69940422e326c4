package act

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/zynaxsoft/zellij/internal/action"
	"github.com/zynaxsoft/zellij/internal/cli/output"
	"github.com/zynaxsoft/zellij/internal/cli/root"
)

type renderedAction struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func render(ctx root.CommandContext, actions []action.Action) error {
	rendered := make([]renderedAction, 0, len(actions))
	for _, a := range actions {
		item, err := renderAction(a)
		if err != nil {
			return err
		}
		rendered = append(rendered, item)
	}
	if ctx.JSON {
		meta := output.NewMeta(ctx.Spec.ID, ctx.Deps.Version)
		return output.WriteSuccess(ctx.Out, meta, rendered)
	}
	for _, item := range rendered {
		if len(item.Payload) == 0 {
			fmt.Fprintln(ctx.Out, item.Type)
			continue
		}
		fmt.Fprintf(ctx.Out, "%s %s\n", item.Type, item.Payload)
	}
	return nil
}

func renderAction(a action.Action) (renderedAction, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return renderedAction{}, fmt.Errorf("encode action: %w", err)
	}
	item := renderedAction{Type: reflect.TypeOf(a).Name()}
	if string(payload) != "{}" {
		item.Payload = payload
	}
	return item, nil
}
