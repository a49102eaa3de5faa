package handlers

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lucavs/blog-api/internal/transfer"
)

func formInt64(v string) int64 {
	n, _ := strconv.ParseInt(v, 10, 64)
	return n
}

// formFile reads an optional multipart file field into memory. A
// missing field returns nil without an error.
func formFile(c *fiber.Ctx, field string) (*transfer.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &transfer.FileUpload{
		Data:        data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
