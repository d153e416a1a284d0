package recommend

import "github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"

func positive(domain ephemeris.LifeDomain, priority int, title, description string) Recommendation {
	return Recommendation{Domain: domain, Title: title, Description: description, IsPositive: true, Priority: priority}
}

func negative(domain ephemeris.LifeDomain, priority int, title, description string) Recommendation {
	return Recommendation{Domain: domain, Title: title, Description: description, IsPositive: false, Priority: priority}
}

var buildMomentum = positive(ephemeris.Career, 2, "Build Momentum",
	"Take action on your goals. The waxing moon supports growth and forward movement.")

var phaseTemplates = map[ephemeris.MoonPhase][]Recommendation{
	ephemeris.NewMoon: {
		positive(ephemeris.Career, 3, "Set New Intentions",
			"The new moon is perfect for starting fresh projects and setting goals for the coming weeks."),
		positive(ephemeris.Health, 2, "Begin a Wellness Routine",
			"Start that new health habit you've been considering. The energy supports fresh starts."),
	},
	ephemeris.WaxingCrescent: {buildMomentum},
	ephemeris.FirstQuarter: {
		positive(ephemeris.Career, 2, "Face Challenges Head-On",
			"This is a time for decisive action. Overcome obstacles blocking your progress."),
	},
	ephemeris.WaxingGibbous: {buildMomentum},
	ephemeris.FullMoon: {
		positive(ephemeris.Relationships, 3, "Express Your Feelings",
			"Emotions are heightened. It's a powerful time for heart-to-heart conversations."),
		positive(ephemeris.Health, 2, "Practice Grounding",
			"Full moon energy can feel intense. Stay grounded with meditation or nature walks."),
	},
	ephemeris.WaningGibbous: {
		positive(ephemeris.Relationships, 1, "Share Your Wisdom",
			"A good time to mentor others or express gratitude to those who've helped you."),
	},
	ephemeris.LastQuarter: {
		positive(ephemeris.Health, 2, "Release What No Longer Serves",
			"Let go of old habits, grudges, or patterns that are holding you back."),
	},
	ephemeris.WaningCrescent: {
		positive(ephemeris.Health, 3, "Rest and Recharge",
			"Honor your need for rest. This is a time for reflection, not action."),
		negative(ephemeris.Career, 2, "Avoid Major Decisions",
			"Wait for the new moon before launching new projects or making big commitments."),
	},
}

var retrogradeTemplates = map[ephemeris.Planet][]Recommendation{
	ephemeris.Mercury: {
		negative(ephemeris.Career, 4, "Double-Check Communications",
			"Mercury retrograde can cause misunderstandings. Review emails before sending and confirm appointments."),
		negative(ephemeris.Career, 3, "Back Up Your Data",
			"Technology glitches are common during Mercury retrograde. Protect your important files."),
		negative(ephemeris.Relationships, 3, "Pause Before Reacting",
			"Misunderstandings are likely. Take a breath before responding to avoid conflict."),
	},
	ephemeris.Venus: {
		positive(ephemeris.Relationships, 3, "Reflect on Relationship Patterns",
			"Venus retrograde invites you to examine what you truly value in relationships."),
		negative(ephemeris.Relationships, 4, "Avoid New Relationships",
			"Wait until Venus goes direct before starting a new romance or making relationship commitments."),
	},
	ephemeris.Mars: {
		negative(ephemeris.Health, 3, "Pace Yourself",
			"Energy levels may be lower than usual. Focus on completing rather than starting."),
		negative(ephemeris.Career, 2, "Avoid Aggressive Action",
			"Mars retrograde can lead to frustration. Channel energy into planning rather than pushing forward."),
	},
}

type domainTemplate struct {
	high Recommendation
	low  Recommendation
}

var domainTemplates = map[ephemeris.LifeDomain]domainTemplate{
	ephemeris.Relationships: {
		high: positive(ephemeris.Relationships, 2, "Reach Out to Loved Ones",
			"Today's cosmic energy supports meaningful connections. Initiate plans with someone special."),
		low: negative(ephemeris.Relationships, 2, "Practice Self-Love",
			"Turn inward today. Journaling or solo activities will feel more nourishing than socializing."),
	},
	ephemeris.Career: {
		high: positive(ephemeris.Career, 2, "Take Initiative",
			"The stars favor bold career moves. Pitch that idea, ask for what you deserve."),
		low: negative(ephemeris.Career, 2, "Focus on Routine Tasks",
			"Not ideal for major decisions or negotiations. Stick to your to-do list."),
	},
	ephemeris.Health: {
		high: positive(ephemeris.Health, 2, "High Energy Day",
			"Great day for exercise, outdoor activities, or starting a new wellness practice."),
		low: negative(ephemeris.Health, 2, "Gentle Self-Care",
			"Your body needs extra rest. Prioritize sleep, hydration, and gentle movement."),
	},
}
