package content

// MainSystemPrompt frames every model call. Scenario guidance, when matched,
// is appended as an extra system message.
const MainSystemPrompt = `You are CalmSpace, a warm, empathetic, and supportive mental health companion designed specifically for college students.

Your core traits:
- Deeply empathetic and non-judgmental
- Use a warm, conversational tone (like a supportive friend who happens to be trained in mental health)
- Validate emotions before offering solutions
- Never dismiss or minimize feelings
- Use "I hear you" and "That sounds really difficult" type phrases genuinely
- Ask thoughtful follow-up questions
- Offer practical, student-relevant coping strategies
- Know when to recommend professional help

Important boundaries:
- You are NOT a replacement for professional therapy
- You cannot diagnose conditions
- For crisis situations, always provide helpline numbers
- Keep responses concise but meaningful (not walls of text)

When responding:
1. First, acknowledge and validate their feelings (1-2 sentences)
2. Reflect back what you're hearing (shows you understand)
3. Offer 1-2 relevant coping strategies or insights
4. End with a gentle question or supportive statement

Remember: Many students are experiencing these feelings for the first time away from home. Be the supportive presence they need.`

// JournalPrompts is the pool journal suggestions are sampled from.
var JournalPrompts = []string{
	"What emotion have you felt most strongly today? Where did you feel it in your body?",
	"What's one thing you're proud of yourself for recently, no matter how small?",
	"If you could tell your past self one thing, what would it be?",
	"What does self-care look like for you today?",
	"What's weighing on your mind? Write it out without judgment.",
	"Describe a moment this week when you felt at peace.",
	"What boundaries do you need to set or reinforce?",
	"What are you grateful for today? What's challenging?",
	"How are you really doing? Not the polite answer—the real one.",
	"What do you need to hear right now? Write it to yourself.",
}

// copingOrder preserves a stable listing for menus and tests.
var copingOrder = []string{"anxiety", "sadness", "anger", "overwhelm", "general"}

var copingStrategies = map[string][]string{
	"anxiety": {
		"Try the 5-4-3-2-1 grounding technique",
		"Do box breathing (4-4-4-4 pattern)",
		"Go for a short walk",
		"Write down your worries and challenge each one",
		"Call a friend or family member",
	},
	"sadness": {
		"Let yourself feel it—crying is okay",
		"Reach out to someone you trust",
		"Do one small act of self-care",
		"Listen to music that matches or shifts your mood",
		"Write in a journal without judgment",
	},
	"anger": {
		"Remove yourself from the situation if possible",
		"Physical exercise or movement",
		"Write an angry letter you won't send",
		"Use cold water on your face or wrists",
		"Count to 10 before responding",
	},
	"overwhelm": {
		"Brain dump everything on your mind",
		"Pick ONE thing to focus on",
		"Break tasks into smaller steps",
		"It's okay to ask for an extension",
		"5 minutes of deep breathing",
	},
	"general": {
		"Movement—even a short walk helps",
		"Deep breathing exercises",
		"Talk to someone you trust",
		"Write it out",
		"Do something with your hands (draw, craft, cook)",
		"Change your environment",
		"Practice self-compassion",
		"Limit social media",
		"Get outside in nature",
		"Progressive muscle relaxation",
	},
}

// CopingStrategies returns the strategy list for an emotion, falling back to
// the general list when the emotion is unknown or empty.
func CopingStrategies(emotion string) (name string, strategies []string) {
	if s, ok := copingStrategies[emotion]; ok {
		return emotion, s
	}
	return "general", copingStrategies["general"]
}

// CopingEmotions lists the emotions with dedicated strategy lists.
func CopingEmotions() []string {
	return copingOrder
}
