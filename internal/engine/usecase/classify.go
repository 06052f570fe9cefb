package usecase

import (
	"context"
	"strings"

	"smart-task-assistant/internal/engine"
	"smart-task-assistant/internal/engine/taxonomy"
)

// Classify maps raw text to a typed command. Intent tiers are checked in
// fixed order (add, search, show, complete, delete); the first match wins.
// Total function: unmatched text becomes UnknownCommand.
func (uc *implUseCase) Classify(ctx context.Context, text string) engine.Command {
	cmd := classify(text)
	uc.l.Debugf(ctx, "engine.Classify: intent=%s", cmd.Type())
	return cmd
}

func classify(text string) engine.Command {
	switch {
	case taxonomy.ContainsAny(text, taxonomy.CommandAdd):
		payload := extractPayload(text, taxonomy.CommandAdd, taxonomy.TaskWords)
		if payload == "" {
			payload = text
		}
		return engine.AddTaskCommand{Text: payload}

	case taxonomy.ContainsAny(text, taxonomy.CommandSearch):
		return engine.SearchCommand{
			Query: extractPayload(text, taxonomy.CommandSearch, taxonomy.SearchConnectors),
		}

	case taxonomy.ContainsAny(text, taxonomy.CommandShow):
		return engine.ShowTasksCommand{}

	case taxonomy.ContainsAny(text, taxonomy.CommandComplete):
		return engine.CompleteTaskCommand{Text: text}

	case taxonomy.ContainsAny(text, taxonomy.CommandDelete):
		return engine.DeleteTaskCommand{Text: text}

	default:
		return engine.UnknownCommand{Text: text}
	}
}

// extractPayload removes the trigger phrases and filler words from the
// ORIGINAL (not lower-cased) text and trims leftover whitespace and
// separator punctuation.
func extractPayload(text string, triggers, fillers []string) string {
	stripped := taxonomy.StripPhrases(text, triggers)
	stripped = taxonomy.StripPhrases(stripped, fillers)
	return strings.Trim(stripped, " :,-،")
}
