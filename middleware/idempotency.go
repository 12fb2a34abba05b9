package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"clubhub/database"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Idempotency processes the Idempotency-Key header for mutating requests.
// A completed key replays the stored response without running the handler;
// reusing a key with a different request body is rejected.
func Idempotency() fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := strings.ToUpper(c.Method())
		if method != fiber.MethodPost && method != fiber.MethodPut && method != fiber.MethodPatch && method != fiber.MethodDelete {
			return c.Next()
		}

		key := strings.TrimSpace(c.Get("Idempotency-Key"))
		if key == "" {
			return c.Next()
		}
		if len(key) > 128 {
			return JsonResponse(c, fiber.StatusBadRequest, false, "Idempotency-Key too long!", nil)
		}

		userID, _ := c.Locals("userId").(uint)

		// Deterministic request hash: method|path|body|user
		h := sha256.New()
		h.Write([]byte(method))
		h.Write([]byte{'\n'})
		h.Write([]byte(c.OriginalURL()))
		h.Write([]byte{'\n'})
		h.Write(c.Body())
		h.Write([]byte{'\n'})
		h.Write([]byte(fmt.Sprintf("%d", userID)))
		reqHash := hex.EncodeToString(h.Sum(nil))

		db := database.Database.Db

		var existing models.IdempotencyKey
		err := db.Where("key = ?", key).First(&existing).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return JsonResponse(c, fiber.StatusInternalServerError, false, "Idempotency lookup failed!", nil)
			}
			rec := models.IdempotencyKey{
				Key:         key,
				UserID:      userID,
				RequestHash: reqHash,
				Method:      method,
				Path:        c.OriginalURL(),
			}
			if e2 := db.Create(&rec).Error; e2 != nil {
				// Unique race: another request inserted the key first; read it back
				if e3 := db.Where("key = ?", key).First(&existing).Error; e3 != nil {
					return JsonResponse(c, fiber.StatusInternalServerError, false, "Idempotency create failed!", nil)
				}
			} else {
				existing = rec
			}
		}

		if existing.RequestHash != reqHash {
			return JsonResponse(c, fiber.StatusConflict, false, "Idempotency-Key reuse with different request!", nil)
		}
		if existing.ResponseStatus != 0 && existing.ResponseBody != nil {
			// Completed earlier: replay the stored response, skip the handler
			c.Status(existing.ResponseStatus)
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(existing.ResponseBody)
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Store the response best-effort; a failure here must not break the reply
		now := time.Now().UTC()
		resp := c.Response().Body()
		blob := make([]byte, len(resp))
		copy(blob, resp)

		db.Model(&models.IdempotencyKey{}).
			Where("key = ?", key).
			Updates(map[string]any{
				"response_status": c.Response().StatusCode(),
				"response_body":   blob,
				"completed_at":    &now,
			})

		return nil
	}
}
