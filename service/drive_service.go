package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// maxDriveImageBytes bounds a single product image download
const maxDriveImageBytes = 20 << 20

// DriveService downloads product images stored in Google Drive
type DriveService struct {
	client *drive.Service
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// NewDriveService creates a DriveService from a Service Account.
// credentialsJSON takes precedence over credentialsPath when both are set.
func NewDriveService(ctx context.Context, credentialsPath, credentialsJSON string) (*DriveService, error) {
	var opt option.ClientOption
	switch {
	case credentialsJSON != "":
		opt = option.WithCredentialsJSON([]byte(credentialsJSON))
	case credentialsPath != "":
		opt = option.WithCredentialsFile(credentialsPath)
	default:
		return nil, fmt.Errorf("no Google credentials configured")
	}

	client, err := drive.NewService(ctx, opt, option.WithScopes(drive.DriveReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{client: client}, nil
}

// DownloadImage downloads the content of a Drive file
func (ds *DriveService) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download drive file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("drive returned status %d for file %s", resp.StatusCode, fileID)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDriveImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read drive file %s: %w", fileID, err)
	}
	return data, nil
}
