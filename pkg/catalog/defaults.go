package catalog

// builtinTemplates is the version-controlled template table used when no
// definitions file is configured. New templates are added here (or in the
// file) without touching the selection code.
var builtinTemplates = []TemplateRecord{
	// --- Hooks ---
	{
		ID:                  "hook-before-after",
		ModuleType:          ModuleHook,
		StructuralPattern:   "[Before] vs. [After]",
		MinLength:           40,
		MaxLength:           120,
		Tone:                "bold, direct",
		Keywords:            []string{"contrast", "before", "after", "transformation", "change", "manual", "automated"},
		SemanticDescription: "Opens with a stark contrast between an old state and a new state to make the reader curious about the transformation in between.",
		Example:             "3 hours of manual reporting vs. 4 minutes with one script.",
	},
	{
		ID:                  "hook-bold-question",
		ModuleType:          ModuleHook,
		StructuralPattern:   "[Provocative question]?",
		MinLength:           30,
		MaxLength:           100,
		Tone:                "provocative, curious",
		Keywords:            []string{"question", "curiosity", "challenge", "assumption", "wonder"},
		SemanticDescription: "Opens with a provocative question that challenges an assumption the reader likely holds.",
		Example:             "What if your best engineer is your biggest bottleneck?",
	},
	{
		ID:                  "hook-shocking-stat",
		ModuleType:          ModuleHook,
		StructuralPattern:   "[Startling number] — [context]",
		MinLength:           30,
		MaxLength:           110,
		Tone:                "urgent, factual",
		Keywords:            []string{"statistic", "number", "surprising", "data", "shocking"},
		SemanticDescription: "Opens with a single startling number that reframes how big or urgent the topic is.",
		Example:             "87% of side projects die in the first month.",
	},
	{
		ID:                  "hook-myth-bust",
		ModuleType:          ModuleHook,
		StructuralPattern:   "Myth: [belief]. Reality: [truth]",
		MinLength:           40,
		MaxLength:           130,
		Tone:                "confident, contrarian",
		Keywords:            []string{"myth", "misconception", "truth", "wrong", "believe"},
		SemanticDescription: "Opens by naming a widespread belief and immediately contradicting it with the actual state of things.",
		Example:             "Myth: more features win users. Reality: speed does.",
	},

	// --- Transitions ---
	{
		ID:                  "transition-bridge",
		ModuleType:          ModuleTransition,
		StructuralPattern:   "So how do you [desired outcome]?",
		MinLength:           25,
		MaxLength:           90,
		Tone:                "conversational",
		Keywords:            []string{"bridge", "next", "how", "setup", "question"},
		SemanticDescription: "Carries the reader from the problem framing into the upcoming answer by posing the natural next question.",
		Example:             "So how do you ship twice as fast without burning out?",
	},
	{
		ID:                  "transition-countdown",
		ModuleType:          ModuleTransition,
		StructuralPattern:   "[N] [things] that [outcome]",
		MinLength:           25,
		MaxLength:           90,
		Tone:                "energetic",
		Keywords:            []string{"list", "countdown", "number", "preview", "coming"},
		SemanticDescription: "Previews the rest of the post as a numbered list, creating a completion pull.",
		Example:             "5 habits that separate senior engineers from the rest.",
	},

	// --- Value: data ---
	{
		ID:                  "value-data-stat-spotlight",
		ModuleType:          ModuleValue,
		ValueSubtype:        SubtypeData,
		StructuralPattern:   "[Number] + [what it means]",
		MinLength:           50,
		MaxLength:           180,
		Tone:                "authoritative, factual",
		Keywords:            []string{"statistic", "source", "evidence", "percentage", "research", "study"},
		SemanticDescription: "Presents a single compelling statistic with source attribution and a one-line interpretation of why it matters.",
		Example:             "42% less rework after adopting trunk-based development (DORA, 2023). Small batches compound.",
	},
	{
		ID:                  "value-data-comparison",
		ModuleType:          ModuleValue,
		ValueSubtype:        SubtypeData,
		StructuralPattern:   "[Option A] vs [Option B]: [numbers]",
		MinLength:           50,
		MaxLength:           180,
		Tone:                "analytical",
		Keywords:            []string{"comparison", "benchmark", "versus", "metrics", "numbers"},
		SemanticDescription: "Puts two options side by side with concrete numbers so the reader can judge the gap themselves.",
		Example:             "Monolith deploy: 40 min. Split services: 6 min. Same team, same tests.",
	},

	// --- Value: insight ---
	{
		ID:                  "value-insight-principle",
		ModuleType:          ModuleValue,
		ValueSubtype:        SubtypeInsight,
		StructuralPattern:   "[Principle]: [explanation]",
		MinLength:           50,
		MaxLength:           180,
		Tone:                "reflective, wise",
		Keywords:            []string{"principle", "lesson", "insight", "rule", "learned"},
		SemanticDescription: "Distills experience into one named principle followed by a compact explanation of why it holds.",
		Example:             "Slow is smooth: every shortcut you take in review you pay back in incidents.",
	},
	{
		ID:                  "value-insight-reframe",
		ModuleType:          ModuleValue,
		ValueSubtype:        SubtypeInsight,
		StructuralPattern:   "You think [X]. Actually [Y]",
		MinLength:           50,
		MaxLength:           170,
		Tone:                "contrarian, sharp",
		Keywords:            []string{"reframe", "perspective", "shift", "counterintuitive", "actually"},
		SemanticDescription: "Flips a common interpretation on its head, replacing the obvious reading with the more useful one.",
		Example:             "You think estimates are promises. They're probes for what you don't know yet.",
	},

	// --- Value: solution ---
	{
		ID:                  "value-solution-steps",
		ModuleType:          ModuleValue,
		ValueSubtype:        SubtypeSolution,
		StructuralPattern:   "Step [n]: [action]",
		MinLength:           60,
		MaxLength:           220,
		Tone:                "practical, instructive",
		Keywords:            []string{"steps", "process", "how-to", "guide", "actionable", "first"},
		SemanticDescription: "Lays out a short numbered sequence of concrete actions the reader can follow immediately.",
		Example:             "Step 1: freeze scope. Step 2: cut the demo to one flow. Step 3: rehearse twice.",
	},
	{
		ID:                  "value-solution-checklist",
		ModuleType:          ModuleValue,
		ValueSubtype:        SubtypeSolution,
		StructuralPattern:   "✓ [item]",
		MinLength:           50,
		MaxLength:           200,
		Tone:                "practical, brisk",
		Keywords:            []string{"checklist", "items", "tasks", "practical", "ready"},
		SemanticDescription: "Compresses the advice into a scannable checklist the reader can screenshot and reuse.",
		Example:             "✓ rollback plan ✓ feature flag ✓ dashboard open ✓ one owner online",
	},

	// --- Value: example ---
	{
		ID:                  "value-example-case-study",
		ModuleType:          ModuleValue,
		ValueSubtype:        SubtypeExample,
		StructuralPattern:   "[Who] did [what] → [result]",
		MinLength:           60,
		MaxLength:           220,
		Tone:                "concrete, credible",
		Keywords:            []string{"case", "example", "result", "story", "real", "company"},
		SemanticDescription: "Grounds the claim in one real actor, what they changed, and the measurable outcome it produced.",
		Example:             "A 4-person team moved standups to async notes. Meetings dropped 60%, shipping didn't.",
	},
	{
		ID:                  "value-example-mini-story",
		ModuleType:          ModuleValue,
		ValueSubtype:        SubtypeExample,
		StructuralPattern:   "[Scene] → [tension] → [resolution]",
		MinLength:           60,
		MaxLength:           220,
		Tone:                "narrative, personal",
		Keywords:            []string{"story", "narrative", "anecdote", "relatable", "moment"},
		SemanticDescription: "Tells a tiny first-person story with a scene, a point of tension and a resolution that carries the lesson.",
		Example:             "Friday, 17:58. The deploy button stares back. I close the laptop. Monday-me says thanks.",
	},

	// --- CTAs ---
	{
		ID:                  "cta-follow",
		ModuleType:          ModuleCTA,
		StructuralPattern:   "Follow for [benefit]",
		MinLength:           20,
		MaxLength:           80,
		Tone:                "friendly, direct",
		Keywords:            []string{"follow", "more", "subscribe", "content"},
		SemanticDescription: "Asks the reader to follow, naming the concrete benefit of future posts.",
		Example:             "Follow for one pragmatic engineering habit every week.",
	},
	{
		ID:                  "cta-comment",
		ModuleType:          ModuleCTA,
		StructuralPattern:   "Comment [prompt]",
		MinLength:           20,
		MaxLength:           90,
		Tone:                "inviting, open",
		Keywords:            []string{"comment", "opinion", "engage", "discussion", "tell"},
		SemanticDescription: "Invites discussion by asking one specific, easy-to-answer question.",
		Example:             "What's the one meeting you'd delete forever? Tell me below.",
	},
	{
		ID:                  "cta-save-share",
		ModuleType:          ModuleCTA,
		StructuralPattern:   "Save this for [use]",
		MinLength:           20,
		MaxLength:           80,
		Tone:                "helpful",
		Keywords:            []string{"save", "share", "bookmark", "reference", "later"},
		SemanticDescription: "Nudges the reader to save or share the post as a reusable reference.",
		Example:             "Save this checklist for your next production release.",
	},
}
