package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxBackupFileSize = 1 << 20

var errFileTooLarge = errors.New("file too large")

// fileFetcher downloads files users send to the bot.
type fileFetcher struct {
	bot    Bot
	client *http.Client
}

func newFileFetcher(bot Bot) *fileFetcher {
	return &fileFetcher{
		bot:    bot,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *fileFetcher) fetch(ctx context.Context, fileID string) ([]byte, error) {
	url, err := f.bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build file request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBackupFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) > maxBackupFileSize {
		return nil, errFileTooLarge
	}
	return data, nil
}
