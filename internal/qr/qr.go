// Package qr renders share links as QR code images.
package qr

import (
	"fmt"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// WritePNG renders content as a QR code PNG at path. The writer is closed by
// the save call.
func WritePNG(content, path string) error {
	if content == "" {
		return fmt.Errorf("cannot encode empty content")
	}

	code, err := qrcode.New(content)
	if err != nil {
		return fmt.Errorf("failed to build QR code: %w", err)
	}

	writer, err := standard.New(path)
	if err != nil {
		return fmt.Errorf("failed to create QR image writer: %w", err)
	}

	if err := code.Save(writer); err != nil {
		return fmt.Errorf("failed to save QR code: %w", err)
	}
	return nil
}
