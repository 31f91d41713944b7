package main

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Run executes the session list command.
func (c *SessionListCmd) Run(deps *Dependencies) error {
	keys, err := deps.Store.Keys(deps.Ctx)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		fmt.Fprintln(deps.Stdout, "Session is empty. Use --store with 'pagelens extract' or 'pagelens code' to save results.")
		return nil
	}
	for _, key := range keys {
		fmt.Fprintln(deps.Stdout, key)
	}
	return nil
}

// Run executes the session get command.
func (c *SessionGetCmd) Run(deps *Dependencies) error {
	var raw json.RawMessage
	if err := deps.Store.Get(deps.Ctx, c.Key, &raw); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting %q: %w", c.Key, err)
	}
	fmt.Fprintln(deps.Stdout, buf.String())
	return nil
}

// Run executes the session clear command.
func (c *SessionClearCmd) Run(deps *Dependencies) error {
	keys, err := deps.Store.Keys(deps.Ctx)
	if err != nil {
		return err
	}
	if err := deps.Store.Remove(deps.Ctx, keys...); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cleared %d keys.\n", len(keys))
	return nil
}
