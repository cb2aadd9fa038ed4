package admin

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/xuri/excelize/v2"

	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/models"
)

const (
	exportSheet       = "Users"
	exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeader = []any{"ID", "Email", "Name", "Role", "Created At"}

// Export godoc
// @Summary Выгрузка пользователей
// @Description Реестр пользователей без паролей в формате xlsx.
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /admin/users/export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.export"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	f, err := usersWorkbook(h.directory.List())
	if err != nil {
		log.Error("failed to build workbook", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("could not export users"))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", exportContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="users.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error("failed to write workbook", sl.Err(err))
		return
	}
	log.Info("users exported")
}

func usersWorkbook(users []models.User) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		f.Close()
		return nil, err
	}
	for i, u := range users {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []any{u.ID, u.Email, u.Name, string(u.Role), u.CreatedAt.UTC().Format(time.RFC3339)}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
