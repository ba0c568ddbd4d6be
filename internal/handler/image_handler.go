package handlers

import (
	"net/http"

	"miblog/internal/service"
)

// UploadImage принимает multipart-файл и возвращает URL в MinIO.
// Клиент подставляет его как imageUrl при создании блога или поста.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := viewerID(r); !ok {
		WriteServiceError(w, service.ErrMissingIdentity)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой или запрос повреждён", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Поле image с файлом обязательно", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageURL, err := h.ImageService.UploadImage(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"imageUrl": imageURL}, http.StatusCreated)
}
