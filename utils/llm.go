package utils

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/config"
)

// ChatMessage is one turn of a coach conversation handed to the model.
type ChatMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

var (
	genaiClient  *genai.Client
	genaiInitErr error
	genaiOnce    sync.Once
)

func getGenAIClient(ctx context.Context) (*genai.Client, error) {
	genaiOnce.Do(func() {
		cfg := config.Get()
		if cfg.GeminiAPIKey == "" {
			genaiInitErr = errors.New("GEMINI_API_KEY not configured")
			return
		}
		genaiClient, genaiInitErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: cfg.GeminiAPIKey,
		})
	})
	return genaiClient, genaiInitErr
}

// GenerateReply sends a system prompt and conversation history to Gemini and
// returns the model's text reply. Callers decide what to do on error; the
// coach falls back to a canned message, research surfaces the failure.
func GenerateReply(ctx context.Context, system string, messages []ChatMessage) (string, error) {
	client, err := getGenAIClient(ctx)
	if err != nil {
		return "", err
	}

	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	if len(contents) == 0 {
		return "", errors.New("no messages to send")
	}

	genCfg := &genai.GenerateContentConfig{}
	if system != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := client.Models.GenerateContent(callCtx, config.Get().GeminiModel, contents, genCfg)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty model response")
	}
	return text, nil
}
