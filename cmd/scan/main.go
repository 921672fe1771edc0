package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/domain"
	"github.com/vishnukant5129/AI-vs-Real-Image/internal/forensics"
)

// Offline forensic scan of local images: runs the same pipeline as the
// service, without transport or persistence.
// Usage: scan -file <image> OR scan -dir <directory>
func main() {
	dirPtr := flag.String("dir", "", "Directory of images to scan")
	filePtr := flag.String("file", "", "Single image file to scan")
	flag.Parse()

	if *dirPtr == "" && *filePtr == "" {
		fmt.Println("Usage:")
		fmt.Println("  scan -file <image>")
		fmt.Println("  scan -dir <directory>")
		os.Exit(1)
	}

	pipeline := forensics.NewPipeline(forensics.DefaultPolicy(), 0, zap.NewNop())

	if *dirPtr != "" {
		scanDirectory(pipeline, *dirPtr)
	} else {
		scanFile(pipeline, *filePtr)
	}
}

func scanDirectory(pipeline *forensics.Pipeline, dirPath string) {
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && isImageExt(path) {
			scanFile(pipeline, path)
		}
		return nil
	})
	if err != nil {
		color.Red("[!] Error walking directory %s: %v", dirPath, err)
	}
}

func isImageExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

func scanFile(pipeline *forensics.Pipeline, filename string) {
	fmt.Printf("\n--- Scanning %s ---\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		color.Red("[-] Failed to read file: %v", err)
		return
	}

	result, err := pipeline.Analyze(context.Background(), domain.ImageInput{
		Data:     data,
		Filename: filepath.Base(filename),
	})
	if err != nil {
		color.Red("[-] Analysis failed: %v", err)
		return
	}

	if result.Verdict == domain.VerdictAIGenerated {
		color.Red("[!] %s (confidence %d%%)", result.Verdict, result.Confidence)
	} else {
		color.Green("[ ] %s (confidence %d%%)", result.Verdict, result.Confidence)
	}

	meta := result.Profile.Metadata
	fmt.Printf("    %dx%d %s, %d bytes, %d EXIF tags\n",
		meta.Width, meta.Height, meta.Format, meta.ByteSize, len(result.Profile.Tags))
	if result.Profile.Noise != nil {
		fmt.Printf("    noise std: %.2f\n", result.Profile.Noise.Std)
	}
	for _, line := range result.Details {
		fmt.Printf("    - %s\n", line)
	}
}
