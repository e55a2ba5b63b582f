package catalog

import "github.com/giygas/afyabuddy-api/entities"

// DefaultRecords returns the built-in first-aid records. Each call returns
// fresh slices.
func DefaultRecords() []entities.ConditionRecord {
	return []entities.ConditionRecord{
		{
			ID:    "low blood sugar",
			Title: "🍬 LOW BLOOD SUGAR (HYPOGLYCEMIA) FIRST AID",
			Steps: []string{
				"Give 15–20g of fast-acting carbs (glucose tablets, fruit juice, soda, candy).",
				"Wait 15 minutes and recheck symptoms.",
				"If symptoms persist, give another 15g sugar.",
				"When recovered, give a meal or snack with carbs and protein.",
			},
			DoNot: []string{
				"Do NOT give anything by mouth if unconscious.",
			},
			SeekHelpIf: []string{
				"Person is unconscious or unable to swallow.",
			},
			Symptoms: []string{
				"Shakiness, dizziness, sweating",
				"Confusion, fast heartbeat",
			},
			Confidence: 0.92,
			Recommendations: []string{
				"Give sugar immediately",
				"Wait and check symptoms",
				"Offer meal once stable",
				"Call emergency help if unconscious",
			},
		},
		{
			ID:    "burn",
			Title: "🔥 BURN TREATMENT (Immediate First Aid)",
			Steps: []string{
				"Cool the burn: Run cool (not cold) water for 10–20 minutes.",
				"Remove tight items: Take off jewelry/clothing near burn.",
				"Protect the area: Use clean, non-stick bandage.",
				"Pain relief: Take OTC medication if needed.",
			},
			DoNot: []string{
				"Do not use butter, creams, or ice.",
				"Do not break blisters.",
			},
			SeekHelpIf: []string{
				"Burn is large, deep, or on face/hands/genitals.",
			},
			Confidence: 0.9,
			Recommendations: []string{
				"Cool with running water",
				"Remove tight clothing",
				"Cover with non-stick bandage",
				"Seek help if severe",
			},
		},
		{
			ID:    "choking",
			Title: "🫁 CHOKING FIRST AID",
			Steps: []string{
				"Ask if they are choking (unable to speak/cough/breathe).",
				"Give 5 back blows: Firm hits between shoulder blades.",
				"Give 5 abdominal thrusts: Quick upward pulls above navel.",
				"Alternate back blows and thrusts until object is dislodged.",
				"If unresponsive: Start CPR and call emergency services.",
			},
			Confidence: 0.95,
			Recommendations: []string{
				"Perform back blows and abdominal thrusts",
				"Call emergency services",
				"Start CPR if unconscious",
			},
		},
		{
			ID:    "bleeding",
			Title: "🩸 BLEEDING FIRST AID",
			Steps: []string{
				"Apply pressure: Use cloth or bandage to stop bleeding.",
				"Elevate injured part above heart level if possible.",
				"Do not remove cloth: Add more layers if bleeding continues.",
			},
			DoNot: []string{
				"Do not remove embedded objects. Stabilize them instead.",
			},
			SeekHelpIf: []string{
				"Bleeding doesn’t stop after 10–15 minutes.",
				"Wound is deep or gaping.",
			},
			Confidence: 0.9,
			Recommendations: []string{
				"Apply direct pressure",
				"Elevate if possible",
				"Seek emergency help if bleeding is severe",
			},
		},
		{
			ID:    "snake bite",
			Title: "🐍 SNAKE BITE FIRST AID",
			Steps: []string{
				"Stay calm and keep victim still.",
				"Immobilize the limb and keep it below heart level.",
				"Remove restrictive items (rings, watches, etc).",
				"Call emergency services for antivenom.",
			},
			DoNot: []string{
				"Do not cut wound, suck venom, or apply ice.",
			},
			Confidence: 0.92,
			Recommendations: []string{
				"Keep the person still",
				"Call for help immediately",
				"Avoid cutting or applying ice",
			},
		},
		{
			ID:    "asthma",
			Title: "💨 ASTHMA ATTACK FIRST AID",
			Steps: []string{
				"Sit upright and stay calm.",
				"Use reliever inhaler: 1 puff every 30–60 seconds, max 10 puffs.",
				"If no improvement: Call emergency services.",
			},
			Symptoms: []string{
				"Difficulty speaking",
				"Blue lips",
				"Rapid breathing",
			},
			Confidence: 0.94,
			Recommendations: []string{
				"Use reliever inhaler",
				"Call help if symptoms persist",
			},
		},
		{
			ID:    "heart attack",
			Title: "❤️ HEART ATTACK FIRST AID",
			Steps: []string{
				"Call emergency services immediately.",
				"Keep calm and still.",
				"Give aspirin if available (if not allergic).",
				"Be ready for CPR if unconscious.",
			},
			Confidence: 0.95,
			Recommendations: []string{
				"Call help fast",
				"Give aspirin if safe",
				"Prepare to give CPR",
			},
		},
		{
			ID:    "stroke",
			Title: "🧠 STROKE FIRST AID",
			Steps: []string{
				"Use F.A.S.T. Test:",
				"F - Face drooping",
				"A - Arm weakness",
				"S - Speech slurred",
				"T - Time to call help",
				"Call emergency services and note time of symptom onset.",
			},
			DoNot: []string{
				"Do not give food or drinks.",
			},
			Confidence: 0.94,
			Recommendations: []string{
				"Use F.A.S.T. to identify stroke",
				"Call emergency help",
			},
		},
		{
			ID:    "seizure",
			Title: "⚡ SEIZURE FIRST AID",
			Steps: []string{
				"Stay calm and time the seizure.",
				"Protect from injury: Remove nearby objects.",
				"Cushion head with folded clothing or pillow.",
				"Roll to side after seizure ends.",
			},
			DoNot: []string{
				"Do not put anything in their mouth.",
				"Do not hold them down.",
			},
			Confidence: 0.93,
			Recommendations: []string{
				"Keep them safe during seizure",
				"Roll to side afterward",
				"Do not restrain or give food/water",
			},
		},
		{
			ID:    "nosebleed",
			Title: "👃 NOSEBLEED FIRST AID",
			Steps: []string{
				"Sit up and lean forward.",
				"Pinch nose for 10–15 minutes.",
				"Apply ice to bridge of nose.",
			},
			DoNot: []string{
				"Do not tilt head back.",
			},
			SeekHelpIf: []string{
				"Bleeding lasts more than 20 minutes.",
			},
			Confidence: 0.92,
			Recommendations: []string{
				"Pinch nose and lean forward",
				"Apply ice pack",
				"Seek help if bleeding doesn't stop",
			},
		},
		{
			ID:    "anaphylaxis",
			Title: "⚠️ ANAPHYLAXIS FIRST AID",
			Steps: []string{
				"Use epipen immediately.",
				"Lie person down (raise legs if not breathing poorly).",
				"Call emergency help.",
				"Repeat epipen in 5–10 minutes if needed.",
			},
			Symptoms: []string{
				"Difficulty breathing",
				"Swelling of face/lips",
				"Hives or rash",
			},
			Confidence: 0.97,
			Recommendations: []string{
				"Use epipen immediately",
				"Call for help",
				"Repeat after 5–10 minutes if no improvement",
			},
		},
	}
}
