package llm

import "context"

// MockClient permite tests sin llamar a un LLM real. Responde en orden con
// Responses (la última se repite) y cuenta las llamadas recibidas.
type MockClient struct {
	Responses []string
	Err       error
	Calls     int
	Models    []string
	Prompts   []string
}

func (m *MockClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	m.Calls++
	m.Models = append(m.Models, model)
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	i := m.Calls - 1
	if i >= len(m.Responses) {
		i = len(m.Responses) - 1
	}
	return m.Responses[i], nil
}
