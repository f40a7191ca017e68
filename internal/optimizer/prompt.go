package optimizer

import (
	"encoding/json"
	"fmt"
)

const systemPrompt = `You are a production scheduling assistant for a small machine shop.
You receive the shop's job list and daily labor-hour capacity as JSON and
propose an improved day-by-day schedule.

Rules:
- Only schedule on weekdays (Monday through Friday), never weekends.
- Never assign more hours to a date than its capacity allows.
- Capacity overrides replace the weekday default for their date.
- Urgent jobs should be scheduled as early as possible.
- A job's segment hours must sum to at most its required hours.

Respond with JSON only, no prose outside the JSON, in this shape:
{"jobs":[{"id":"...","scheduledSegments":[{"date":"YYYY-MM-DD","hours":4}],"preferredStartDate":"YYYY-MM-DD"}],"explanation":"..."}`

// buildUserPrompt renders the payload as the user message. The free-text
// constraints are carved out into their own section so the model does not
// mistake them for data.
func buildUserPrompt(payload *Payload) (string, error) {
	snapshot := *payload
	snapshot.Constraints = ""
	body, err := json.Marshal(&snapshot)
	if err != nil {
		return "", fmt.Errorf("marshaling payload: %w", err)
	}

	prompt := "Here is the current shop state:\n" + string(body)
	if payload.Constraints != "" {
		prompt += "\n\nAdditional constraints from the planner:\n" + payload.Constraints
	}
	return prompt, nil
}
