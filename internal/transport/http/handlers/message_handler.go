package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/vcaron/dialogue/internal/service"
	"github.com/vcaron/dialogue/internal/transport/http/middleware"
)

const maxUploadMemory = 32 << 20 // 32 MB kept in memory, rest spills to disk

// MessageHandler is the access layer in front of MessageService: it resolves
// the authenticated user, enforces participant checks, and hands uploads
// over for best-effort attachment.
type MessageHandler struct {
	msgService  *service.MessageService
	convService *service.ConversationService
}

func NewMessageHandler(msgService *service.MessageService, convService *service.ConversationService) *MessageHandler {
	return &MessageHandler{
		msgService:  msgService,
		convService: convService,
	}
}

// Send accepts a multipart form with an optional "text" field and an
// optional "image" file.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	convID, ok := h.requireParticipant(w, r, userID)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid multipart form")
		return
	}

	var text *string
	if v := r.FormValue("text"); v != "" {
		text = &v
	}

	var upload *service.Upload
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		upload = &service.Upload{
			Content:     file,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Filename:    header.Filename,
		}
	}

	msg, err := h.msgService.SendWithUpload(r.Context(), convID, userID, text, upload)
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
		} else {
			log.Printf("ERROR send message: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	convID, ok := h.requireParticipant(w, r, userID)
	if !ok {
		return
	}

	messages, err := h.msgService.ListMessages(r.Context(), convID)
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
		} else {
			log.Printf("ERROR list messages: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// Gallery lists the photos attached to the conversation's messages.
func (h *MessageHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	convID, ok := h.requireParticipant(w, r, userID)
	if !ok {
		return
	}

	photos, err := h.msgService.ListPhotos(r.Context(), convID)
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
		} else {
			log.Printf("ERROR list photos: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, photos)
}

// requireParticipant parses the conversation id from the path and verifies
// the user belongs to it. The services themselves do not re-check this.
func (h *MessageHandler) requireParticipant(w http.ResponseWriter, r *http.Request, userID uuid.UUID) (uuid.UUID, bool) {
	convID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid conversation ID")
		return uuid.Nil, false
	}

	conv, err := h.convService.FindByID(r.Context(), convID, userID)
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
		} else {
			log.Printf("ERROR find conversation: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return uuid.Nil, false
	}

	if !conv.HasParticipant(userID) {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You are not a participant of this conversation")
		return uuid.Nil, false
	}

	return convID, true
}
