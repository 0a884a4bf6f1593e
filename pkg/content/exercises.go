package content

// Exercise is a guided breathing exercise users pick by name.
type Exercise struct {
	Tag         string
	Name        string
	Duration    string
	Description string
	Steps       string
}

var breathingExercises = []Exercise{
	{
		Tag:         "box",
		Name:        "Box Breathing",
		Duration:    "4 minutes",
		Description: "Used by Navy SEALs to stay calm under pressure.",
		Steps: `**Box Breathing Exercise** 📦

1. **Inhale** slowly for 4 seconds
2. **Hold** your breath for 4 seconds
3. **Exhale** slowly for 4 seconds
4. **Hold** empty for 4 seconds

Repeat 4 times.

This activates your parasympathetic nervous system and reduces stress hormones.

Would you like me to guide you through it step by step?`,
	},
	{
		Tag:         "478",
		Name:        "4-7-8 Breathing",
		Duration:    "3 minutes",
		Description: "Dr. Andrew Weil's relaxation technique.",
		Steps: `**4-7-8 Breathing Exercise** 🌬️

1. **Exhale** completely through your mouth
2. **Inhale** quietly through your nose for **4 seconds**
3. **Hold** your breath for **7 seconds**
4. **Exhale** completely through your mouth for **8 seconds**

Repeat 4 times.

This is especially good for anxiety and falling asleep.

Want me to walk you through it?`,
	},
	{
		Tag:         "grounding",
		Name:        "5-4-3-2-1 Grounding",
		Duration:    "5 minutes",
		Description: "Brings you back to the present moment.",
		Steps: `**5-4-3-2-1 Grounding Exercise** 🌳

Look around and find:

👀 **5 things you can SEE**
(Name them out loud or in your mind)

✋ **4 things you can TOUCH**
(Feel their texture)

👂 **3 things you can HEAR**
(Near or far away)

👃 **2 things you can SMELL**
(Or 2 scents you like)

👅 **1 thing you can TASTE**
(Or imagine a favorite taste)

Take a deep breath. You are here. You are safe.

How do you feel now?`,
	},
}

// Meditation is a short guided meditation script.
type Meditation struct {
	Tag    string
	Name   string
	Script string
}

var meditations = []Meditation{
	{
		Tag:  "quick_calm",
		Name: "2-Minute Calm",
		Script: `**2-Minute Calm** 🧘

Find a comfortable position. Close your eyes if that feels okay.

Take a deep breath in... and slowly let it out.

Notice your feet on the ground. Feel the support beneath you.

Breathe in calm... breathe out tension.

You don't need to change anything right now. Just be here.

One more deep breath... and when you're ready, gently open your eyes.

You can return to this moment whenever you need it. 💙`,
	},
	{
		Tag:  "body_scan",
		Name: "Body Scan",
		Script: `**Quick Body Scan** 🌟

Close your eyes. Take three deep breaths.

**Head**: Notice any tension in your forehead, jaw, or neck. Soften.

**Shoulders**: Let them drop away from your ears. Release.

**Arms & Hands**: Unclench your fists. Let your hands be heavy.

**Chest**: Notice your breath. No need to change it.

**Stomach**: Release any holding or tightness.

**Legs & Feet**: Feel them supported by the ground.

Take one more breath. You are whole. You are here. 💙`,
	},
	{
		Tag:  "self_compassion",
		Name: "Self-Compassion",
		Script: `**Self-Compassion Meditation** 💚

Place your hand on your heart. Feel its warmth.

Repeat silently or aloud:

*"This is a moment of difficulty."*
(Acknowledge what you're feeling)

*"Difficulty is part of being human."*
(You're not alone in this)

*"May I be kind to myself."*
(You deserve compassion)

*"May I give myself the compassion I need."*
(Let it in)

Breathe. You are worthy of kindness—especially your own. 💚`,
	},
}

func BreathingExercises() []Exercise {
	return breathingExercises
}

func Meditations() []Meditation {
	return meditations
}
