package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"liquor-bartender/internal/domain"
)

var (
	fenceStart = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	fenceEnd   = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// cleanLLMJSONResponse quita fences ```json ... ``` y BOM, dejando el contenido usable.
func cleanLLMJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\uFEFF")
	s = fenceStart.ReplaceAllString(s, "")
	s = fenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// firstJSONObject devuelve el primer objeto JSON balanceado del texto, o ""
// si no hay ninguno. Ignora llaves dentro de strings.
func firstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(input); i++ {
		c := input[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}
	return ""
}

// parseRecommendationSet parsea la salida de la etapa de formateo a un
// RecommendationSet. Tolera fences y texto alrededor del JSON, pero exige al
// menos una botella con nombre.
func parseRecommendationSet(raw string) (domain.RecommendationSet, error) {
	cleaned := cleanLLMJSONResponse(raw)

	candidate := firstJSONObject(cleaned)
	if candidate == "" {
		candidate = firstJSONObject(raw)
	}
	if candidate == "" {
		return domain.RecommendationSet{}, fmt.Errorf("no JSON object in response")
	}

	var set domain.RecommendationSet
	if err := json.Unmarshal([]byte(candidate), &set); err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("unmarshal recommendations: %w", err)
	}
	if len(set.Bottles) == 0 {
		return domain.RecommendationSet{}, fmt.Errorf("empty bottles list in response")
	}
	for _, b := range set.Bottles {
		if strings.TrimSpace(b.Name) == "" {
			return domain.RecommendationSet{}, fmt.Errorf("recommendation without bottle name")
		}
	}
	return set, nil
}
