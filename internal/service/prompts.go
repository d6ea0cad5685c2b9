package service

import "fmt"

// Prompts de la cadena generativa: análisis de perfil, recomendación sobre
// candidatos prefiltrados y formateo a JSON estricto.

const analyzePromptTmpl = `You are an expert liquor sommelier. Analyze the following bar profile and extract the key taste preferences, focusing on spirit types, ABV, and price range. Reply with a short summary in plain text.

Profile:
%s`

const recommendPromptTmpl = `Recommend exactly %d bottles for this drinker based on their preferences (favorite spirit and ABV). Choose ONLY from the pre-filtered candidate list below and make sure the recommendations are unique. Provide a convincing reason why each bottle matches the taste profile.

Candidates:
%s

Taste profile summary:
%s`

const formatPromptTmpl = `Format the top %d recommendations as JSON with this exact shape: {"bottles": [{"name": "...", "reason": "..."}]}. Reasons must be concise and convincing. Return ONLY the JSON object, nothing else.

Recommendations:
%s`

func analyzePrompt(profileJSON string) string {
	return fmt.Sprintf(analyzePromptTmpl, profileJSON)
}

func recommendPrompt(count int, candidatesJSON, summary string) string {
	return fmt.Sprintf(recommendPromptTmpl, count, candidatesJSON, summary)
}

func formatPrompt(count int, recommendations string) string {
	return fmt.Sprintf(formatPromptTmpl, count, recommendations)
}
