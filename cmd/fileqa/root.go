package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"fileqa-go/internal/config"
	"fileqa-go/internal/model"
	"fileqa-go/internal/service"
	"fileqa-go/pkg/llm"
	"fileqa-go/pkg/log"

	"github.com/spf13/cobra"
)

type clientFactory func(cfg config.LLMConfig) (llm.Client, error)

func newRootCmd(newClient clientFactory) *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:          "fileqa",
		Short:        "Ask questions about a local document",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (defaults only when empty)")

	root.AddCommand(askCmd(&cfgPath, newClient), modelsCmd(&cfgPath))
	return root
}

func askCmd(cfgPath *string, newClient clientFactory) *cobra.Command {
	var filePath, question, modelName string
	var verbose bool
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Answer a question using only the given file as context",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			if verbose {
				log.Init(cfg.Log.Level, "console", cfg.Log.OutputPath)
				defer log.Sync()
			}

			if strings.TrimSpace(question) == "" {
				return &service.InputError{Field: "question", Reason: "must not be empty"}
			}

			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", filePath, err)
			}
			doc, err := service.NewDocumentService(cfg.Upload).Decode(filePath, data)
			if err != nil {
				return err
			}

			client, err := newClient(cfg.LLM)
			if err != nil {
				return err
			}
			if modelName == "" {
				modelName = cfg.LLM.DefaultModel
			}

			answer, err := service.NewQAService(client, cfg.LLM.Models).Ask(context.Background(), model.Query{
				Document: doc,
				Question: question,
				Model:    modelName,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer.Content)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "document to ask about (.txt, .md)")
	cmd.Flags().StringVarP(&question, "question", "q", "", "question to ask")
	cmd.Flags().StringVarP(&modelName, "model", "m", "", "model name (defaults to llm.default_model)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable logging")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("question")
	return cmd
}

func modelsCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List supported models",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			for _, m := range cfg.LLM.Models {
				suffix := ""
				if m == cfg.LLM.DefaultModel {
					suffix = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", m, suffix)
			}
			return nil
		},
	}
}
