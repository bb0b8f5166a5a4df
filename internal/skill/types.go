package skill

// ActionKind enumerates what the skill does for a request.
type ActionKind int

const (
	ActionUnrecognized ActionKind = iota
	ActionGreet
	ActionAskQuestion
	ActionTranslate
	ActionHelp
	ActionStop
)

func (k ActionKind) String() string {
	switch k {
	case ActionGreet:
		return "greet"
	case ActionAskQuestion:
		return "ask_question"
	case ActionTranslate:
		return "translate"
	case ActionHelp:
		return "help"
	case ActionStop:
		return "stop"
	default:
		return "unrecognized"
	}
}

// Action is the resolved intent. Text carries the question for
// ActionAskQuestion and the phrase for ActionTranslate; it is empty otherwise.
type Action struct {
	Kind ActionKind
	Text string
}

// DisplayKind says which visual element accompanies the speech.
type DisplayKind int

const (
	DisplayNone DisplayKind = iota
	DisplayCard
	DisplayRichTemplate
)

// Display is the visual part of a Response. Which fields are meaningful
// depends on Kind:
//   - DisplayCard: Title, Content
//   - DisplayRichTemplate: Title, PrimaryText, SecondaryText (optional)
type Display struct {
	Kind          DisplayKind
	Title         string
	Content       string
	PrimaryText   string
	SecondaryText *string
}

// Response is the final, device-appropriate answer for one invocation.
type Response struct {
	SpeechText       string
	ShouldEndSession bool
	Display          Display
}
