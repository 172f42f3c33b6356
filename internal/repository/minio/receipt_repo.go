package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// ReceiptRepo сохраняет текст счёта оформленного заказа в MinIO.
type ReceiptRepo struct {
	mc     objectPutter
	bucket string
}

func NewReceiptRepo(mc *minio.Client, bucket string) *ReceiptRepo {
	return &ReceiptRepo{mc: mc, bucket: bucket}
}

// Archive загружает счёт и возвращает ключ объекта.
func (r *ReceiptRepo) Archive(ctx context.Context, order *domain.Order, bill string) (string, error) {
	key := receiptKey(order, uuid.NewString())

	info, err := r.mc.PutObject(ctx, r.bucket, key, strings.NewReader(bill), int64(len(bill)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
		UserMetadata: map[string]string{
			"order-total": order.Total.StringFixed(2),
			"order-items": fmt.Sprint(len(order.Items)),
		},
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// receiptKey раскладывает счета по месяцам: receipts/2026/01/20260102T030405Z-<id>.txt
func receiptKey(order *domain.Order, id string) string {
	ts := order.Timestamp.UTC()
	return fmt.Sprintf("receipts/%s/%s-%s.txt", ts.Format("2006/01"), ts.Format("20060102T150405Z"), id)
}
