package response

import "github.com/gofiber/fiber/v3"

// DetailResponse is the error envelope for every non-2xx reply. Successful
// replies carry the requested document as the whole body, so there is no
// success wrapper.
type DetailResponse struct {
	Detail string `json:"detail"`
}

const (
	DetailBadRequest          = "Bad Request"
	DetailNotFound            = "Not Found"
	DetailInternalServerError = "Internal Server Error"
)

func Detail(c fiber.Ctx, status int, detail string) error {
	if detail == "" {
		detail = defaultDetailForStatus(status)
	}
	return c.Status(status).JSON(DetailResponse{Detail: detail})
}

func NotFound(c fiber.Ctx, detail string) error {
	return Detail(c, fiber.StatusNotFound, detail)
}

func defaultDetailForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return DetailBadRequest
	case fiber.StatusNotFound:
		return DetailNotFound
	default:
		if status >= 500 {
			return DetailInternalServerError
		}
		return DetailBadRequest
	}
}
