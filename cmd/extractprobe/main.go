package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audit-backend/internal/extract"
	"audit-backend/internal/llm"
	openaillm "audit-backend/internal/llm/openai"
	"audit-backend/internal/shared/config"
)

// extractprobe runs the extraction prompt against a local procedure
// document, either through the mock client or the live OpenAI client.
func main() {
	cfg := config.Load()

	filePath := flag.String("file", "", "Path to procedure document (pdf, docx, txt, md)")
	outPath := flag.String("out", "", "Path to write raw JSON output (optional)")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	useMock := flag.Bool("mock", false, "Use the mock client instead of calling OpenAI")
	flag.Parse()

	if strings.TrimSpace(*filePath) == "" {
		exitErr("file path is required")
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		exitErr(fmt.Sprintf("read file: %v", err))
	}
	fileName := filepath.Base(*filePath)

	mimeType, err := mimeFromExt(*filePath)
	if err != nil {
		exitErr(err.Error())
	}

	text, err := extract.TextFromBytes(context.Background(), data, mimeType, fileName)
	if err != nil {
		exitErr(fmt.Sprintf("extract document text: %v", err))
	}

	client, err := buildClient(cfg, *model, *useMock)
	if err != nil {
		exitErr(err.Error())
	}

	result, err := client.ExtractProcedures(context.Background(), llm.ExtractInput{
		ProceduresText: text,
		SourceFileName: fileName,
	})
	if err != nil {
		exitErr(fmt.Sprintf("llm extract: %v", err))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, result.Payload, "", "  "); err != nil {
		pretty.Write(result.Payload)
	}

	if strings.TrimSpace(*outPath) != "" {
		if err := os.WriteFile(*outPath, pretty.Bytes(), 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	} else {
		fmt.Println(pretty.String())
	}
	fmt.Fprintf(os.Stderr, "tokens used: %d\n", result.TokensUsed)
}

func buildClient(cfg config.Config, model string, useMock bool) (llm.Client, error) {
	if useMock || !cfg.LLMConfigured() {
		return llm.MockClient{}, nil
	}
	return openaillm.NewClient(cfg.OpenAIAPIKey, model)
}

func mimeFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf", nil
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	case ".txt":
		return "text/plain", nil
	case ".md", ".markdown":
		return "text/markdown", nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
