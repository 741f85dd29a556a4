package service

import "context"

// DriveServiceInterface defines the contract for Google Drive image downloads
type DriveServiceInterface interface {
	DownloadImage(ctx context.Context, fileID string) ([]byte, error)
}
