package usecase

const systemPrompt = `You are an expert meeting assistant. Produce concise, factual, and actionable summaries. Obey the custom instruction. If the transcript is empty or low-signal, return 'No substantial content found.' Do not invent details.`

const defaultOutputStructure = `Default output structure when user hasn't specified:

Title: <one line>

Key Points:
• <point>
• <point>
• <point>

Action Items:
• <who>: <what> by <when>
• <who>: <what> by <when>

Next Steps:
• <next meeting/follow-up>`

// DefaultInstruction replaces a blank custom prompt before composition.
const DefaultInstruction = "Provide a structured summary"

// FallbackSummary is returned when the provider yields no usable text.
const FallbackSummary = "No substantial content found."

// composePrompt assembles the provider prompt. The order is a contract the
// provider relies on for instruction-following: system preamble, custom
// instruction verbatim, default output template, then the transcript verbatim.
func composePrompt(customPrompt, transcriptText string) string {
	return systemPrompt +
		"\n\nCUSTOM INSTRUCTION: " + customPrompt +
		"\n\n" + defaultOutputStructure +
		"\n\nTRANSCRIPT TO SUMMARIZE:\n" + transcriptText +
		"\n\nPlease provide a summary following the custom instruction above."
}
