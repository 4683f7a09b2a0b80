package bot

import "strings"

// CommandKind identifies one of the closed set of bot commands.
type CommandKind string

// The full set of commands the router can produce.
const (
	CommandStart           CommandKind = "start"
	CommandRandom          CommandKind = "random"
	CommandCategories      CommandKind = "categories"
	CommandHelp            CommandKind = "help"
	CommandQuoteByCategory CommandKind = "quote_by_category"
	CommandUnknown         CommandKind = "unknown"
)

// Command is the classified intent derived from a message text. Category is
// set only for CommandQuoteByCategory.
type Command struct {
	Kind     CommandKind
	Category string
}

const quoteByCategoryPrefix = "/quote_"

// Route maps message text to a Command. Matching is literal: exact matches
// for the fixed commands, then the /quote_ prefix with the untrimmed,
// case-sensitive remainder as the category. Everything else is Unknown.
// Route is pure and deterministic.
func Route(text string) Command {
	switch text {
	case "/start":
		return Command{Kind: CommandStart}
	case "/random":
		return Command{Kind: CommandRandom}
	case "/categories":
		return Command{Kind: CommandCategories}
	case "/help":
		return Command{Kind: CommandHelp}
	}

	if strings.HasPrefix(text, quoteByCategoryPrefix) {
		return Command{
			Kind:     CommandQuoteByCategory,
			Category: strings.TrimPrefix(text, quoteByCategoryPrefix),
		}
	}

	return Command{Kind: CommandUnknown}
}
