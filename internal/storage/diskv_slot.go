package storage

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvSlot keeps values in a flat diskv store with a small read cache.
type DiskvSlot struct {
	d *diskv.Diskv
}

func NewDiskvSlot(basePath string) (*DiskvSlot, error) {
	if basePath == "" {
		return nil, errors.New("storage: diskv base path is required")
	}
	return &DiskvSlot{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *DiskvSlot) Get(_ context.Context, key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	b, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("diskv read: %w", err)
	}
	return string(b), nil
}

func (s *DiskvSlot) Set(_ context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := s.d.WriteString(key, value); err != nil {
		return fmt.Errorf("diskv write: %w", err)
	}
	return nil
}

func (s *DiskvSlot) Close() error { return nil }
