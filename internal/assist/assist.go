// Package assist implements the LLM-assisted planning features: task
// enrichment, schedule planning, and schedule refinement. It is a
// pass-through integration: prompts go out, structured JSON comes back,
// and it never touches the database; callers read the credential from the
// settings store and persist results through the entity stores.
package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/dukaforge/cadence/pkg/types"
)

// System prompts for each assist operation.
const (
	enrichSystemPrompt = "You are a helpful assistant. The user will provide a task title, and you will enrich it by generating a short description (1-2 sentences) and suggesting 3-5 relevant tags. Format the output as a JSON object with 'notes' and 'tags' keys."

	planSystemPrompt = "You are a helpful assistant. The user will provide a list of tasks. Your job is to suggest a plausible schedule by assigning a 'start_slot' and 'end_slot' for each task. Today is a normal workday. The user wants to start work at 9am. Slots are 30-minute intervals, so 9am is slot 18, 9:30am is 19, etc. The output should be a JSON object with a 'blocks' key, containing a list of objects, each with 'task_id', 'start_slot', and 'end_slot'."

	refineSystemPrompt = "You are a helpful assistant. The user will provide an existing schedule and an instruction. You will refine the schedule based on the instruction. The output should be a JSON object with a 'blocks' key, containing the new list of blocks."
)

// Client calls the hosted chat-completions API with a fixed model.
type Client struct {
	api   openai.Client
	model openai.ChatModel
}

// NewClient creates a Client with the given credential and model name. An
// empty model falls back to types.DefaultModel.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = types.DefaultModel
	}
	return &Client{
		api:   openai.NewClient(option.WithAPIKey(apiKey)),
		model: openai.ChatModel(model),
	}
}

// Enrich asks the model for a short description and suggested tags for a
// task title.
func (c *Client) Enrich(ctx context.Context, title string) (types.Enrichment, error) {
	content, err := c.complete(ctx, enrichSystemPrompt, title)
	if err != nil {
		return types.Enrichment{}, err
	}
	return parseEnrichment(content)
}

// Plan asks the model to lay the given tasks out as day blocks.
func (c *Client) Plan(ctx context.Context, tasks []types.Task) (types.PlanResult, error) {
	payload, err := json.Marshal(tasks)
	if err != nil {
		return types.PlanResult{}, fmt.Errorf("encode tasks: %w", err)
	}
	content, err := c.complete(ctx, planSystemPrompt, string(payload))
	if err != nil {
		return types.PlanResult{}, err
	}
	return parsePlan(content)
}

// Refine asks the model to adjust an existing schedule per an instruction.
// The existing schedule is passed as the caller serialized it.
func (c *Client) Refine(ctx context.Context, existing, instruction string) (types.PlanResult, error) {
	user := fmt.Sprintf("Existing schedule: %s. Instruction: %s", existing, instruction)
	content, err := c.complete(ctx, refineSystemPrompt, user)
	if err != nil {
		return types.PlanResult{}, err
	}
	return parsePlan(content)
}

// complete runs one system+user exchange and returns the assistant's text.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
