package content

// CrisisCategory is the coarse escalation class attached to a message.
type CrisisCategory string

const (
	CrisisNone     CrisisCategory = ""
	CrisisSelfHarm CrisisCategory = "self_harm"
	CrisisPanic    CrisisCategory = "panic"
	CrisisGeneral  CrisisCategory = "general"
)

// SelfHarmKeywords flag suicide or self-harm language. Matched as
// case-insensitive substrings anywhere in the message.
var SelfHarmKeywords = []string{
	"suicide", "kill myself", "end my life", "want to die", "better off dead",
	"self harm", "self-harm", "hurt myself", "cutting", "overdose",
	"can't go on", "no point living", "end it all", "take my life",
	"don't want to be here", "wish i was dead", "not worth living",
}

// PanicKeywords flag an acute panic episode in progress.
var PanicKeywords = []string{
	"panic attack", "having a panic", "can't breathe", "cant breathe",
	"heart is racing", "hyperventilating", "losing control right now",
}

// GeneralCrisisKeywords flag an explicit ask for urgent support that is
// neither self-harm nor panic language.
var GeneralCrisisKeywords = []string{
	"i'm in crisis", "im in crisis", "need help right now", "emergency",
}

// CrisisResources is the escalation text with helpline numbers. It is sent
// verbatim on the crisis branch and repeated inside degraded fallbacks.
const CrisisResources = `🚨 **Crisis Resources**

If you're in immediate danger, please call emergency services (911 in US).

**24/7 Crisis Helplines:**

🇮🇳 **India:**
• AASRA: 9820466726
• iCall: 9152987821
• Vandrevala Foundation: 1860-2662-345

🇺🇸 **USA:**
• 988 Suicide & Crisis Lifeline: Call/Text **988**
• Crisis Text Line: Text **HOME** to **741741**

🇬🇧 **UK:**
• Samaritans: 116 123
• SHOUT: Text **SHOUT** to **85258**

🌍 **International:**
• International Association for Suicide Prevention: https://www.iasp.info/resources/Crisis_Centres/

**Remember:** Reaching out is brave. You matter. Help is available. 💙`
