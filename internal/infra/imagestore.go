package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golfpoi/pkg/utils"
)

// ImageStore is the external blob-store collaborator. Binaries live only
// there; courses hold the opaque identifiers it mints.
type ImageStore interface {
	Upload(ctx context.Context, data []byte) (string, error)
	Delete(ctx context.Context, imageID string) error
	GetImages(ctx context.Context, imageIDs []string) ([]ImageInfo, error)
}

// ImageInfo is the display metadata the store returns per identifier.
type ImageInfo struct {
	ID     string `json:"public_id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ImageStoreConfig is passed in at construction time; the client never
// reads ambient environment state.
type ImageStoreConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type imageStoreClient struct {
	config ImageStoreConfig
	client *http.Client
}

func NewImageStoreClient(config ImageStoreConfig) ImageStore {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &imageStoreClient{
		config: config,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *imageStoreClient) Upload(ctx context.Context, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.config.BaseURL+"/images", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrImageStoreFailure, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrImageStoreFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: upload returned status %d", utils.ErrImageStoreFailure, resp.StatusCode)
	}

	var info ImageInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrImageStoreFailure, err)
	}
	return info.ID, nil
}

func (s *imageStoreClient) Delete(ctx context.Context, imageID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		s.config.BaseURL+"/images/"+imageID, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrImageStoreFailure, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrImageStoreFailure, err)
	}
	defer resp.Body.Close()

	// Deleting an already-gone blob is fine; the identifier is stale either way.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent &&
		resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("%w: delete returned status %d", utils.ErrImageStoreFailure, resp.StatusCode)
	}
	return nil
}

func (s *imageStoreClient) GetImages(ctx context.Context, imageIDs []string) ([]ImageInfo, error) {
	images := make([]ImageInfo, 0, len(imageIDs))

	for _, id := range imageIDs {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			s.config.BaseURL+"/images/"+id, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrImageStoreFailure, err)
		}
		req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrImageStoreFailure, err)
		}

		if resp.StatusCode == http.StatusNotFound {
			// Dangling reference; skip it rather than break the whole gallery.
			resp.Body.Close()
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: fetch returned status %d", utils.ErrImageStoreFailure, resp.StatusCode)
		}

		var info ImageInfo
		err = json.NewDecoder(resp.Body).Decode(&info)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrImageStoreFailure, err)
		}
		images = append(images, info)
	}

	return images, nil
}
