package usecase

// Log prefixes
const (
	LogPrefixHandle  = "internal.skill.usecase.Handle"
	LogPrefixFailure = "internal.skill.usecase.Failure"
)

// Intent names as configured in the interaction model. The short forms are
// what the HTTP gateway sends.
const (
	IntentAskAI            = "AskAIIntent"
	IntentAskAIShort       = "AskAI"
	IntentAskOpenAI        = "AskOpenAIIntent"
	IntentAskOpenAIShort   = "AskOpenAI"
	IntentAskQuestion      = "AskQuestionIntent"
	IntentAskQuestionShort = "AskQuestion"
	IntentTranslate        = "TranslateToEnglishIntent"
	IntentTranslateShort   = "TranslateToEnglish"
	IntentAmazonHelp       = "AMAZON.HelpIntent"
	IntentHelp             = "HelpIntent"
	IntentHelpShort        = "Help"
	IntentAmazonStop       = "AMAZON.StopIntent"
	IntentAmazonCancel     = "AMAZON.CancelIntent"
	IntentStop             = "StopIntent"
	IntentStopShort        = "Stop"
	IntentCancel           = "CancelIntent"
	IntentCancelShort      = "Cancel"
)

// Slot names
const (
	SlotQuestion = "question"
	SlotPhrase   = "phrase"
)

// DefaultQuestion is asked when the question slot is empty.
const DefaultQuestion = "こんにちは"

// Fixed speech
const (
	MsgGreeting       = "こんにちは！何かお手伝いできることはありますか？"
	MsgHelp           = "何か質問があれば、お気軽にお聞きください。"
	MsgGoodbye        = "お疲れさまでした。またお会いしましょう。"
	MsgUnrecognized   = "申し訳ございませんが、理解できませんでした。もう一度お試しください。"
	MsgNoAnswer       = "申し訳ございませんが、回答を生成できませんでした。"
	MsgCouldNotHear   = "すみません、翻訳するフレーズが聞き取れませんでした。"
	MsgNoTranslation  = "申し訳ございませんが、翻訳できませんでした。"
	MsgGenericFailure = "申し訳ございませんが、エラーが発生しました。もう一度お試しください。"
	DefaultCardTitle  = "Montblanc - AI Assistant"
)

// Completion personas
const (
	PersonaAssistant = "あなたは親切で役立つアシスタントです。日本語で回答してください。回答は400字程度にまとめてください。音声で聞き取りやすいように、簡潔で分かりやすい表現を使用してください。"

	PersonaTranslator = "あなたはプロの翻訳者です。与えられた日本語を自然な英語に翻訳してください。出力は英訳の1行のみとし、説明、補足、引用符は一切含めないでください。"

	// PromptTranslate wraps the phrase to translate.
	PromptTranslate = "「%s」を英語に翻訳してください。"
)

// Default completion budgets
const (
	DefaultAskMaxTokens         = 300
	DefaultAskTemperature       = 0.7
	DefaultTranslateMaxTokens   = 100
	DefaultTranslateTemperature = 0.2
)

// speechPacing wraps echoed input shown on a display: a one second pause,
// then slowed delivery.
const speechPacing = `<speak><break time="1s"/><prosody rate="slow">%s</prosody></speak>`
