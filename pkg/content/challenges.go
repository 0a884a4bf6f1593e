package content

// Challenge is one day of the 30-day wellness challenge.
type Challenge struct {
	Day      int
	Title    string
	Task     string
	Category string
}

// ChallengeDays is the upper bound of the challenge counter.
const ChallengeDays = 30

var challenges = []Challenge{
	{Day: 1, Title: "Gratitude Start", Task: "Write down 3 things you're grateful for today. They can be small—a warm coffee, a text from a friend, sunshine.", Category: "mindfulness"},
	{Day: 2, Title: "Hydration Check", Task: "Drink 8 glasses of water today. Set reminders if needed. Notice how your body feels.", Category: "physical"},
	{Day: 3, Title: "Digital Sunset", Task: "Put your phone away 30 minutes before bed. Read, stretch, or just be.", Category: "sleep"},
	{Day: 4, Title: "Reach Out", Task: "Send a message to someone you haven't talked to in a while. Just say hi.", Category: "connection"},
	{Day: 5, Title: "Movement Joy", Task: "Do 10 minutes of movement you enjoy—dance, walk, stretch, anything.", Category: "physical"},
	{Day: 6, Title: "Mindful Meal", Task: "Eat one meal without screens. Notice the flavors, textures, and how your body feels.", Category: "mindfulness"},
	{Day: 7, Title: "Reflection", Task: "Journal for 5 minutes: How has your week been? What do you need more of?", Category: "reflection"},
	{Day: 8, Title: "Nature Break", Task: "Spend 15 minutes outside. No phone. Just notice your surroundings.", Category: "mindfulness"},
	{Day: 9, Title: "Boundary Practice", Task: "Say 'no' to one thing today that doesn't serve you. Notice how it feels.", Category: "self-care"},
	{Day: 10, Title: "Sleep Sanctuary", Task: "Make your sleep space more comfortable—tidy up, adjust lighting, fresh sheets.", Category: "sleep"},
	{Day: 11, Title: "Compliment Day", Task: "Give three genuine compliments today—to others or yourself.", Category: "connection"},
	{Day: 12, Title: "Breathing Space", Task: "Practice 4-7-8 breathing (inhale 4, hold 7, exhale 8) three times today.", Category: "mindfulness"},
	{Day: 13, Title: "Nourish", Task: "Eat one extra serving of fruits or vegetables today.", Category: "physical"},
	{Day: 14, Title: "Weekly Check-in", Task: "Rate your week 1-10. What worked? What needs adjustment?", Category: "reflection"},
	{Day: 15, Title: "Act of Kindness", Task: "Do something kind for someone else—hold a door, buy a coffee, send encouragement.", Category: "connection"},
	{Day: 16, Title: "Creative Expression", Task: "Spend 15 minutes on something creative—draw, write, play music, craft.", Category: "self-care"},
	{Day: 17, Title: "Body Scan", Task: "Do a 5-minute body scan meditation. Notice areas of tension without judgment.", Category: "mindfulness"},
	{Day: 18, Title: "Social Media Fast", Task: "Take a break from social media for the entire day. Notice how you feel.", Category: "self-care"},
	{Day: 19, Title: "Learn Something", Task: "Spend 20 minutes learning something new just for fun—not for class.", Category: "growth"},
	{Day: 20, Title: "Declutter", Task: "Organize one small space (desk, drawer, bag). External order helps internal calm.", Category: "self-care"},
	{Day: 21, Title: "Three-Week Reflection", Task: "You're 3 weeks in! Write about what changes you've noticed.", Category: "reflection"},
	{Day: 22, Title: "Morning Mindfulness", Task: "Before checking your phone, take 5 deep breaths and set an intention for the day.", Category: "mindfulness"},
	{Day: 23, Title: "Movement Challenge", Task: "Take the stairs all day, or do 20 squats every few hours.", Category: "physical"},
	{Day: 24, Title: "Forgiveness", Task: "Write about something you need to forgive—yourself or someone else. You don't have to share it.", Category: "reflection"},
	{Day: 25, Title: "Connection Deep Dive", Task: "Have a meaningful conversation with someone. Ask real questions. Listen fully.", Category: "connection"},
	{Day: 26, Title: "Joy List", Task: "Make a list of 10 things that bring you joy. Do at least one today.", Category: "self-care"},
	{Day: 27, Title: "Affirmation Day", Task: "Choose 3 affirmations and repeat them throughout the day. Write them somewhere visible.", Category: "mindfulness"},
	{Day: 28, Title: "Future Self Letter", Task: "Write a letter to yourself 6 months from now. What do you hope for?", Category: "reflection"},
	{Day: 29, Title: "Celebration", Task: "Celebrate yourself today. You've almost completed 30 days! Do something you enjoy.", Category: "self-care"},
	{Day: 30, Title: "Integration", Task: "Reflect: Which practices will you continue? What have you learned about yourself?", Category: "reflection"},
}

// Affirmations are rotated into challenge-day replies.
var Affirmations = []string{
	"I am worthy of rest and recovery.",
	"My feelings are valid, even when they're difficult.",
	"I am doing the best I can with what I have.",
	"It's okay to ask for help.",
	"I am more than my grades or productivity.",
	"This difficult moment will pass.",
	"I deserve compassion, especially from myself.",
	"Progress, not perfection.",
	"I am enough, exactly as I am.",
	"My mental health matters.",
	"I can handle challenges one step at a time.",
	"It's okay to not have everything figured out.",
	"I am learning and growing every day.",
	"My worth is not determined by others' opinions.",
	"I give myself permission to take breaks.",
	"Struggling doesn't mean failing.",
	"I am resilient.",
	"Today, I choose to be kind to myself.",
	"I trust my ability to get through this.",
	"I am allowed to set boundaries.",
}

// Challenges returns all 30 days in order.
func Challenges() []Challenge {
	return challenges
}

// ChallengeForDay returns the challenge for day 1..30.
func ChallengeForDay(day int) (Challenge, bool) {
	if day < 1 || day > len(challenges) {
		return Challenge{}, false
	}
	return challenges[day-1], true
}
