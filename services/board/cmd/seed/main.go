package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"corkboard/pkg/config"
	"corkboard/pkg/database"
	"corkboard/pkg/logger"
	"corkboard/pkg/s3"
	"corkboard/services/board/internal/capacity"
	"corkboard/services/board/internal/entity"
	"corkboard/services/board/internal/repo/persistent"
	"corkboard/services/board/internal/usecase"
)

func main() {
	var (
		count  = flag.Int("count", 20, "number of posts to submit")
		images = flag.Int("images", 0, "how many of those posts are cat images uploaded to S3")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	var s3Client *s3.Client
	if *images > 0 {
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			panic(err)
		}
	}

	limits := capacity.Limits{MaxActive: cfg.MaxActive, MaxCore: cfg.MaxCore}
	board := usecase.NewBoardUseCase(persistent.NewPostRepository(db), limits, nil, log)

	if err := seedBoard(context.Background(), board, s3Client, *count, *images, log); err != nil {
		log.Error("Failed to seed board: %v", err)
		panic(err)
	}

	log.Info("Board seeded successfully!")
}

// seedBoard submits posts until count is reached or the active tier fills up.
func seedBoard(ctx context.Context, board usecase.BoardUseCase, s3Client *s3.Client, count, images int, log *logger.Logger) error {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	for i := 0; i < count; i++ {
		draft := entity.Draft{
			Kind:    entity.KindText,
			Content: fmt.Sprintf("Note #%d pinned by the seeder", i+1),
			Caption: "seed",
		}

		if i < images {
			mediaRef, err := uploadCatImage(ctx, httpClient, s3Client, i, log)
			if err != nil {
				log.Error("Failed to upload image for post %d: %v", i+1, err)
				continue
			}
			draft = entity.Draft{Kind: entity.KindImage, MediaRef: mediaRef, Caption: "seed cat"}
		}

		result, err := board.Submit(ctx, draft)
		if err != nil {
			return fmt.Errorf("failed to submit post %d: %w", i+1, err)
		}
		if result.Outcome != entity.OutcomeCommitted {
			log.Info("Active tier is full after %d posts, stopping", i)
			return nil
		}
		log.Info("Created post %d (%s)", result.Post.ID, result.Post.Kind)
	}

	return nil
}

func uploadCatImage(ctx context.Context, httpClient *http.Client, s3Client *s3.Client, index int, log *logger.Logger) (string, error) {
	cataasURL := "https://cataas.com/cat"
	if index%2 == 0 {
		cataasURL += fmt.Sprintf("/says/Board%%20post%%20%d", index+1)
	}

	log.Info("Fetching cat image from %s", cataasURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cataasURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch cat image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) == 0 {
		return "", fmt.Errorf("received empty image data")
	}

	return s3Client.UploadFile(ctx, s3.ObjectKey("seed.jpg"), bytes.NewReader(imageData), "image/jpeg")
}
