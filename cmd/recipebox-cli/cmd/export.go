// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"recipebox/internal/export"
	"recipebox/internal/storage"
)

func newExportCmd(e *env) *cobra.Command {
	var (
		flags  queryFlags
		out    string
		bucket string
		key    string
	)

	cmd := &cobra.Command{
		Use:   "export --out <file.xlsx>",
		Short: "Export matching recipes to an Excel workbook",
		Long: `Export the recipes matching a query to an Excel workbook and
optionally upload it to S3-compatible storage.

Examples:
  recipebox-cli export --out recipes.xlsx
  recipebox-cli export --out quick.xlsx --filter quick --sort time
  recipebox-cli export --out quick.xlsx --s3-key exports/quick.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			res, q, err := flags.evaluate(ctx, e)
			if err != nil {
				return err
			}

			data, err := export.Bytes(res, q)
			if err != nil {
				return err
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d of %d recipes to %s\n", res.Count(), res.Total, out)

			if key == "" {
				return nil
			}
			link, err := upload(ctx, e, bucket, key, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded to s3://%s/%s\nDownload link: %s\n", bucketOr(bucket, e), key, link)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output .xlsx path")
	cmd.Flags().StringVar(&bucket, "s3-bucket", "", "bucket to upload to (default $S3_BUCKET)")
	cmd.Flags().StringVar(&key, "s3-key", "", "object key; uploading is skipped when empty")
	cmd.MarkFlagRequired("out")
	return cmd
}

// upload stores the workbook and returns a presigned download link.
func upload(ctx context.Context, e *env, bucket, key string, data []byte) (string, error) {
	if !e.cfg.S3Configured() {
		return "", fmt.Errorf("upload requested but S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY are not set")
	}

	client, err := storage.New(e.cfg.S3Endpoint, e.cfg.S3Region, e.cfg.S3AccessKey, e.cfg.S3SecretKey,
		bucketOr(bucket, e), e.cfg.S3PublicURL)
	if err != nil {
		return "", err
	}

	if err := client.Upload(ctx, key, export.ContentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return "", err
	}
	return client.PresignGet(ctx, key, storage.DefaultLinkExpiry)
}

func bucketOr(bucket string, e *env) string {
	if bucket != "" {
		return bucket
	}
	return e.cfg.S3Bucket
}
