package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"image-fetcher/config"
	"image-fetcher/domain"
	"image-fetcher/repositories"
	"image-fetcher/services"
)

func main() {
	printBanner()

	cfg := config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful Shutdown handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received signal %v, stopping...", sig)
		cancel()
	}()

	fileRepo := repositories.NewFileRepository(cfg.OutputDir)
	if err := fileRepo.EnsureDir(); err != nil {
		log.Fatalf("failed to create output directory %s: %v", cfg.OutputDir, err)
	}
	fmt.Printf("✓ Output directory %q is ready\n", cfg.OutputDir)

	imageRepo := repositories.NewHTTPImageRepository(cfg.HTTPTimeout, cfg.UserAgent, cfg.MaxImageSize)
	pageFetcher := repositories.NewPageFetcher(cfg.HTTPTimeout, cfg.UserAgent)

	fetcher := services.NewFetcherService(
		services.WithDownloader(imageRepo),
		services.WithStore(fileRepo),
	)
	extractor := services.NewExtractorService(pageFetcher)

	reader := bufio.NewReader(os.Stdin)
	urls := collectURLs(ctx, reader, extractor)
	if len(urls) == 0 {
		fmt.Println("No URLs provided, nothing to fetch.")
		return
	}

	summary := fetchAll(ctx, fetcher, urls)
	printSummary(summary)
}

// fetchAll runs the pipeline for each URL in order. Failures are reported
// per URL and the run moves on; cancellation stops the loop.
func fetchAll(ctx context.Context, fetcher *services.FetcherService, urls []string) domain.Summary {
	summary := domain.Summary{Attempted: len(urls)}

	for i, rawURL := range urls {
		if ctx.Err() != nil {
			fmt.Println("\nInterrupted, stopping.")
			break
		}

		fmt.Printf("\n[%d/%d] Connecting to: %s\n", i+1, len(urls), rawURL)
		result, err := fetcher.FetchImage(ctx, rawURL)
		if err != nil {
			fmt.Printf("✗ %v\n", err)
			continue
		}

		summary.Succeeded++
		if result.Duplicate {
			summary.Duplicates++
			fmt.Println("ℹ Already fetched this image, skipping duplicate")
			continue
		}
		fmt.Printf("✓ Saved %s (%d bytes)\n", result.Filename, result.Size)
		fmt.Printf("✓ Image saved to %s\n", result.Path)
	}

	summary.UniqueImages = fetcher.UniqueCount()
	return summary
}

func collectURLs(ctx context.Context, reader *bufio.Reader, extractor *services.ExtractorService) []string {
	fmt.Println("\nChoose input method:")
	fmt.Println("1. Single URL")
	fmt.Println("2. Multiple URLs (one per line)")
	fmt.Println("3. URLs separated by commas")
	fmt.Println("4. Every image on a web page")
	fmt.Print("\nEnter your choice (1-4): ")

	switch readLine(reader) {
	case "1":
		return promptSingleURL(reader)

	case "2":
		fmt.Println("Enter URLs (one per line, empty line to finish):")
		var urls []string
		for {
			line := readLine(reader)
			if line == "" {
				break
			}
			urls = append(urls, line)
		}
		return urls

	case "3":
		fmt.Print("Enter URLs separated by commas: ")
		return splitCommaSeparated(readLine(reader))

	case "4":
		fmt.Print("Enter the page URL: ")
		pageURL := readLine(reader)
		if pageURL == "" {
			return nil
		}
		urls, err := extractor.ExtractImageURLs(ctx, pageURL)
		if err != nil {
			fmt.Printf("✗ Failed to scan page: %v\n", err)
			return nil
		}
		fmt.Printf("Found %d image(s) on the page\n", len(urls))
		return urls

	default:
		fmt.Println("Invalid choice, defaulting to single URL")
		return promptSingleURL(reader)
	}
}

func promptSingleURL(reader *bufio.Reader) []string {
	fmt.Print("Please enter the image URL: ")
	url := readLine(reader)
	if url == "" {
		return nil
	}
	return []string{url}
}

func readLine(reader *bufio.Reader) string {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func splitCommaSeparated(input string) []string {
	var urls []string
	for _, part := range strings.Split(input, ",") {
		if url := strings.TrimSpace(part); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

func printBanner() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Image Fetcher")
	fmt.Println("A tool for mindfully collecting images from the web")
	fmt.Println(strings.Repeat("=", 60))
}

func printSummary(summary domain.Summary) {
	fmt.Println("\nSummary:")
	fmt.Printf("✓ Successfully fetched: %d/%d images\n", summary.Succeeded, summary.Attempted)
	if summary.Duplicates > 0 {
		fmt.Printf("ℹ Duplicates skipped: %d\n", summary.Duplicates)
	}
	fmt.Printf("✓ Unique images this run: %d\n", summary.UniqueImages)
}
