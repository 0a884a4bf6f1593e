package content

// Resource is one topic in the self-help library.
type Resource struct {
	Tag   string
	Title string
	Body  string
}

// resources is ordered; the 1-based position doubles as a lookup index in
// the menu, so new topics go at the end.
var resources = []Resource{
	{
		Tag:   "stress_management",
		Title: "📚 Stress Management",
		Body: `**Understanding & Managing Stress**

Stress is your body's response to demands. Some stress is normal, but chronic stress affects your health.

**Signs of Stress:**
• Racing thoughts or difficulty concentrating
• Muscle tension, headaches
• Changes in sleep or appetite
• Irritability or mood swings
• Procrastination or avoidance

**Quick Stress Busters:**
1. **4-7-8 Breathing**: Inhale 4 sec, hold 7 sec, exhale 8 sec
2. **5-minute walk**: Movement releases tension
3. **Brain dump**: Write everything on your mind
4. **Cold water on wrists**: Activates calming response
5. **Progressive muscle relaxation**: Tense and release each muscle group

**Long-term Strategies:**
• Regular exercise (even 20 min helps)
• Consistent sleep schedule
• Time blocking for work and rest
• Saying "no" to overcommitment
• Weekly planning sessions`,
	},
	{
		Tag:   "anxiety",
		Title: "💭 Understanding Anxiety",
		Body: `**Anxiety in College Students**

Anxiety is the most common mental health concern for college students. You're not alone.

**Types You Might Experience:**
• **Generalized anxiety**: Constant worry about many things
• **Social anxiety**: Fear of judgment in social situations
• **Performance anxiety**: Stress about exams, presentations
• **Panic attacks**: Sudden intense fear with physical symptoms

**Grounding Techniques (5-4-3-2-1):**
• 5 things you can SEE
• 4 things you can TOUCH
• 3 things you can HEAR
• 2 things you can SMELL
• 1 thing you can TASTE

**When to Seek Help:**
• Anxiety interferes with daily activities
• You avoid situations due to fear
• Physical symptoms are frequent
• You're using substances to cope`,
	},
	{
		Tag:   "depression_signs",
		Title: "🌧️ Signs of Depression",
		Body: `**Recognizing Depression**

Depression is more than sadness—it's a persistent condition that affects how you think, feel, and function.

**Warning Signs:**
• Persistent sad, empty, or hopeless feelings
• Loss of interest in activities you used to enjoy
• Changes in appetite or weight
• Sleeping too much or too little
• Fatigue or loss of energy
• Difficulty concentrating or making decisions
• Feelings of worthlessness or excessive guilt
• Thoughts of death or suicide

**What Helps:**
• Maintain routines (even basic ones)
• Gentle movement and sunlight
• Connect with one trusted person
• Professional support (therapy, counseling)
• Sometimes medication is helpful

**Important:** Depression is treatable. Reaching out is a sign of strength, not weakness.`,
	},
	{
		Tag:   "sleep_hygiene",
		Title: "😴 Sleep Hygiene",
		Body: `**Better Sleep for Students**

College schedules make good sleep challenging, but sleep affects everything—mood, memory, grades, and health.

**Sleep Hygiene Basics:**
1. **Consistent schedule**: Same bedtime/wake time (even weekends)
2. **Screen curfew**: No phones/laptops 1 hour before bed
3. **Cool, dark room**: 65-68°F is optimal
4. **Caffeine cutoff**: None after 2 PM
5. **Bed = sleep only**: Don't study in bed

**Can't Sleep?**
• Get up after 20 minutes of trying
• Do something boring in dim light
• Return when sleepy
• Don't check the time

**College-Specific Tips:**
• White noise for noisy dorms
• Eye mask if roommate has different schedule
• Communicate boundaries with roommates
• Naps before 3 PM, under 30 minutes`,
	},
	{
		Tag:   "exam_preparation",
		Title: "📝 Exam Anxiety & Preparation",
		Body: `**Managing Exam Stress**

Some anxiety before exams is normal and can even help performance. Too much anxiety hurts it.

**Before the Exam:**
• Start early—cramming increases anxiety
• Break material into chunks
• Use active recall (test yourself)
• Teach concepts to someone else
• Get enough sleep (memory consolidation)

**Night Before:**
• Light review only (no new material)
• Prepare everything you need
• Relaxing activity before bed
• Trust your preparation

**During the Exam:**
• Read all instructions first
• Start with questions you know
• Skip and return to hard ones
• Breathe if you feel panicky
• Don't compare pace with others

**If You Blank Out:**
• Close your eyes, breathe deeply
• Start writing anything related
• Move to another question
• It will come back`,
	},
	{
		Tag:   "loneliness_connection",
		Title: "🤝 Loneliness & Building Connections",
		Body: `**Feeling Lonely at College**

Loneliness is incredibly common in college, even when surrounded by people. Social media makes it worse by showing everyone else's highlight reels.

**Why It's Common:**
• New environment, no established friendships
• Everyone seems to have friends already (they don't)
• Harder to make friends than in high school
• Quality connections take time

**Small Steps to Connect:**
1. Say hi to someone in class
2. Join ONE club or group
3. Study in public spaces
4. Accept invitations (even when tired)
5. Be the one who initiates

**Quality Over Quantity:**
• One genuine friend > many acquaintances
• Deep conversations > surface chat
• Consistent contact > constant contact

**Be Patient:**
It takes 50+ hours of interaction to form a friendship. Give it time.`,
	},
	{
		Tag:   "homesickness",
		Title: "🏠 Dealing with Homesickness",
		Body: `**Missing Home**

Homesickness is grief for your old life while adjusting to a new one. It's completely normal.

**What Helps:**
• **Stay connected**: Regular calls/texts with family
• **Bring comfort items**: Photos, favorite blanket, familiar snacks
• **Create new routines**: Sunday morning coffee ritual, etc.
• **Make your space yours**: Decorate, organize, nest
• **Get involved**: Campus activities give purpose

**What Doesn't Help:**
• Going home every weekend (prevents adjustment)
• Isolating in your room
• Constant comparison to home
• Refusing to try new things

**Timeline:**
• Weeks 1-3: Often the hardest
• Month 2-3: Starts improving
• End of semester: New normal forms

It does get better. Give yourself grace during the transition.`,
	},
	{
		Tag:   "imposter_syndrome",
		Title: "🎭 Imposter Syndrome",
		Body: `**Feeling Like a Fraud**

Imposter syndrome: believing you don't deserve your success and will be "found out" as incompetent.

**Signs:**
• Attributing success to luck, not skill
• Downplaying achievements
• Fear of being exposed
• Overworking to prove worth
• Difficulty accepting praise

**Reality Check:**
• 70% of people experience this
• High achievers feel it MORE
• Your acceptance wasn't a mistake
• Others struggle too (they hide it)

**Reframing Strategies:**
1. Keep a "wins" file of accomplishments
2. When you think "I got lucky," add "AND I worked hard"
3. Talk to peers—they feel it too
4. Mentor someone newer (you DO know things)
5. "I'm learning" not "I'm failing"

**Remember:** You don't have to feel confident to be competent.`,
	},
	{
		Tag:   "burnout",
		Title: "🔥 Academic Burnout",
		Body: `**Recognizing & Recovering from Burnout**

Burnout isn't laziness—it's exhaustion from prolonged stress without adequate recovery.

**Signs of Burnout:**
• Exhaustion that sleep doesn't fix
• Cynicism about school/activities
• Feeling ineffective despite effort
• Emotional numbness
• Physical symptoms (headaches, illness)

**Recovery Steps:**
1. **Acknowledge it**: This is real, not weakness
2. **Reduce load**: Drop what you can (even temporarily)
3. **Rest without guilt**: Recovery is productive
4. **Set boundaries**: Learn to say no
5. **Seek support**: Talk to advisor, counselor

**Prevention:**
• Build breaks into your schedule
• Protect sleep and exercise
• Have non-academic interests
• Regular check-ins with yourself
• Sustainable pace > sprint

**The "hustle culture" lie:** Burning out doesn't mean you worked hard. It means you worked unsustainably.`,
	},
	{
		Tag:   "healthy_relationships",
		Title: "💕 Healthy Relationships",
		Body: `**Building & Maintaining Healthy Relationships**

College relationships (romantic, friendships, roommates) can be wonderful and challenging.

**Signs of Healthy Relationships:**
• Mutual respect and trust
• Open communication
• Supporting each other's goals
• Maintaining individual identity
• Healthy conflict resolution
• Feeling safe to be yourself

**Red Flags:**
• Controlling behavior
• Constant criticism
• Isolation from friends/family
• Jealousy presented as "caring"
• Making you feel bad about yourself
• Physical intimidation

**Communication Tips:**
• Use "I feel" statements
• Listen to understand, not respond
• Address issues early
• It's okay to need space
• Apologize meaningfully

**Remember:** You deserve relationships that add to your life, not drain it.`,
	},
	{
		Tag:   "time_management",
		Title: "⏰ Time Management",
		Body: `**Managing Time in College**

College gives you more freedom and less structure—this is both exciting and challenging.

**Common Traps:**
• Overcommitting
• Underestimating task time
• Procrastination spirals
• All-nighters (they don't work)
• No buffer time

**Effective Strategies:**
1. **Time blocking**: Schedule specific tasks
2. **2-minute rule**: If it takes <2 min, do it now
3. **Pomodoro**: 25 min work, 5 min break
4. **Sunday planning**: Map out the week
5. **Buffer time**: Things take longer than expected

**Prioritization:**
• **Urgent + Important**: Do first
• **Important + Not urgent**: Schedule it
• **Urgent + Not important**: Delegate/minimize
• **Neither**: Eliminate

**Energy Management:**
Do hard tasks when you're most alert. Save easy tasks for low-energy times.`,
	},
	{
		Tag:   "mindfulness_basics",
		Title: "🧘 Mindfulness Basics",
		Body: `**Introduction to Mindfulness**

Mindfulness: paying attention to the present moment without judgment. Simple concept, powerful practice.

**Benefits:**
• Reduced anxiety and stress
• Improved focus
• Better emotional regulation
• Decreased rumination
• Better sleep

**Simple Practices:**
1. **Mindful breathing**: Focus on breath for 1 minute
2. **Body scan**: Notice sensations head to toe
3. **Mindful eating**: Really taste your food
4. **Walking meditation**: Feel each step
5. **STOP technique**: Stop, Take a breath, Observe, Proceed

**Common Misconceptions:**
• You DON'T need to clear your mind
• Thoughts are normal—notice and return to breath
• 5 minutes counts
• You can't do it "wrong"
• It's a practice, not perfection

**Start Small:**
2 minutes daily > 20 minutes once a week. Consistency matters more than duration.`,
	},
	{
		Tag:   "self_compassion",
		Title: "💚 Self-Compassion",
		Body: `**Being Kind to Yourself**

Self-compassion: treating yourself with the same kindness you'd offer a friend.

**Three Components:**
1. **Self-kindness** vs self-judgment
2. **Common humanity** (everyone struggles) vs isolation
3. **Mindfulness** vs over-identification with pain

**Self-Compassion Break:**
When struggling, say to yourself:
• "This is a moment of suffering" (mindfulness)
• "Suffering is part of life" (common humanity)
• "May I be kind to myself" (self-kindness)

**Reframing Self-Talk:**
• Instead of: "I'm so stupid"
• Try: "I'm struggling, and that's okay"

• Instead of: "Everyone else has it together"
• Try: "Everyone struggles with something"

**Why It Matters:**
Self-compassion increases resilience, motivation, and wellbeing. Self-criticism does the opposite.`,
	},
	{
		Tag:   "panic_attacks",
		Title: "😰 Managing Panic Attacks",
		Body: `**Understanding Panic Attacks**

A panic attack is a sudden surge of intense fear with physical symptoms. They're terrifying but not dangerous.

**Symptoms:**
• Racing heart
• Shortness of breath
• Chest tightness
• Dizziness
• Tingling sensations
• Feeling of unreality
• Fear of dying or losing control

**During a Panic Attack:**
1. **Remember**: This will pass (usually 10-20 min)
2. **Breathe slowly**: In for 4, out for 6
3. **Ground yourself**: 5-4-3-2-1 technique
4. **Don't fight it**: Resistance increases panic
5. **Stay present**: "I am safe. This is temporary."

**After:**
• Be gentle with yourself
• Rest if needed
• Reflect on triggers
• Consider professional support if recurring

**Prevention:**
Regular stress management, sleep, exercise, and limiting caffeine can reduce frequency.`,
	},
	{
		Tag:   "substance_use",
		Title: "🍺 Substance Use Awareness",
		Body: `**Making Informed Choices**

College often involves exposure to alcohol and other substances. Here's what to know.

**Alcohol Awareness:**
• Standard drink = 12oz beer = 5oz wine = 1.5oz liquor
• Your brain is still developing until ~25
• "Everyone drinks" is a myth (many don't)
• Hangovers affect next-day performance significantly

**Warning Signs of Problem Use:**
• Using to cope with stress/emotions
• Blacking out
• Needing more to feel effects
• Neglecting responsibilities
• Others expressing concern

**Harm Reduction:**
• Eat before drinking
• Alternate with water
• Never leave drinks unattended
• Have a buddy system
• Know how you're getting home

**If You're Concerned:**
• Campus health services
• SAMHSA Helpline: 1-800-662-4357
• It's okay to ask for help`,
	},
	{
		Tag:   "grief_loss",
		Title: "🕊️ Grief & Loss",
		Body: `**Navigating Grief**

Loss comes in many forms: death, breakups, friendships ending, leaving home, loss of identity or dreams.

**Grief Isn't Linear:**
The "stages" (denial, anger, bargaining, depression, acceptance) aren't steps. You may cycle through them randomly.

**What's Normal:**
• Waves of intense emotion
• Feeling okay, then suddenly not
• Physical symptoms (fatigue, appetite changes)
• Difficulty concentrating
• Questioning everything

**What Helps:**
• Let yourself feel (don't "should" yourself)
• Talk to someone who listens without fixing
• Maintain basic routines
• Be patient with yourself
• Create rituals of remembrance

**Grief While in College:**
It's hard to grieve while keeping up with classes. Talk to professors—most will understand. Use campus counseling.`,
	},
	{
		Tag:   "social_anxiety",
		Title: "😓 Social Anxiety",
		Body: `**Managing Social Anxiety**

Social anxiety: intense fear of social situations due to fear of judgment or embarrassment.

**Common Triggers:**
• Meeting new people
• Speaking in class
• Eating in public
• Group projects
• Parties/social events

**What's Happening:**
Your brain overestimates threat and underestimates your ability to cope. Others notice your anxiety far less than you think.

**Coping Strategies:**
1. **Challenge thoughts**: "What's the evidence I'll be judged?"
2. **Focus outward**: Listen to others vs. monitoring yourself
3. **Gradual exposure**: Start with low-stakes situations
4. **Prepare**: Having topics ready can help
5. **Self-compassion**: Everyone feels awkward sometimes

**Helpful Reframes:**
• "I don't have to be perfect"
• "Awkward moments pass"
• "Most people are focused on themselves"
• "I'm allowed to be quiet"

**When to Seek Help:**
If social anxiety significantly limits your life, therapy (especially CBT) is very effective.`,
	},
	{
		Tag:   "perfectionism",
		Title: "🎯 Perfectionism",
		Body: `**When High Standards Hurt**

Perfectionism: setting extremely high standards and being highly self-critical when you don't meet them.

**Healthy Striving vs. Perfectionism:**
• Healthy: "I want to do well"
• Perfectionism: "I must be perfect or I'm a failure"

**Signs:**
• All-or-nothing thinking
• Procrastination (fear of imperfection)
• Difficulty celebrating achievements
• Harsh self-criticism
• Never feeling "good enough"
• Avoiding challenges (might fail)

**Costs of Perfectionism:**
• Anxiety and depression
• Burnout
• Actually worse performance
• Missed opportunities
• Relationship strain

**Recovery Strategies:**
1. Set "good enough" goals
2. Practice imperfection deliberately
3. Notice and challenge all-or-nothing thoughts
4. Celebrate effort, not just outcomes
5. Ask: "Will this matter in 5 years?"

**Remember:** Done is better than perfect. Progress over perfection.`,
	},
	{
		Tag:   "financial_wellness",
		Title: "💰 Financial Stress",
		Body: `**Managing Money Stress**

Financial stress is real stress. It affects mental health, academic performance, and relationships.

**Common Concerns:**
• Tuition and loans
• Daily expenses
• Work-school balance
• Comparing to others
• Family expectations

**Practical Steps:**
1. **Know your numbers**: Track spending for one week
2. **Basic budget**: Needs, wants, savings
3. **Use campus resources**: Food pantries, emergency funds
4. **Financial aid office**: They can help more than you think
5. **Student discounts**: Always ask

**Part-Time Work Balance:**
• 15-20 hours/week generally manageable
• On-campus jobs often more flexible
• Work-study can be helpful

**If You're Struggling:**
• Talk to financial aid BEFORE a crisis
• Many schools have emergency funds
• Food insecurity support exists
• You're not alone in this

**Mindset:** Financial stress doesn't define your worth or future.`,
	},
	{
		Tag:   "seeking_help",
		Title: "🆘 When & How to Seek Help",
		Body: `**Reaching Out for Support**

Asking for help is a strength, not a weakness. Knowing when and how to seek help is an important life skill.

**Signs You Should Talk to Someone:**
• Feelings that won't go away
• Difficulty functioning (classes, relationships, self-care)
• Using substances to cope
• Thoughts of self-harm
• Feeling hopeless
• Significant changes in sleep, appetite, energy

**Campus Resources:**
• **Counseling Center**: Usually free for students
• **Health Services**: Can address physical symptoms
• **Dean of Students**: Academic accommodations
• **RA/Resident Advisor**: First point of contact

**What to Expect:**
• Initial assessment/intake
• You'll discuss what's bringing you in
• Together you'll make a plan
• Confidential (with some legal exceptions)

**If the Wait is Long:**
• Ask about crisis appointments
• Group therapy often has shorter waits
• Online resources as supplement
• Community mental health centers

**Remember:** You don't have to be in crisis to seek help. Early support prevents bigger problems.`,
	},
}

// Resources returns the library in declaration order.
func Resources() []Resource {
	return resources
}

// ResourceByTag returns the resource with the exact tag.
func ResourceByTag(tag string) (Resource, bool) {
	for _, r := range resources {
		if r.Tag == tag {
			return r, true
		}
	}
	return Resource{}, false
}

// ResourceByIndex returns the resource at the given 1-based menu position.
func ResourceByIndex(n int) (Resource, bool) {
	if n < 1 || n > len(resources) {
		return Resource{}, false
	}
	return resources[n-1], true
}
