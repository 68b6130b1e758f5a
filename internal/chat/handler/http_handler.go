// Package handler exposes the chat services over HTTP. Handlers are thin:
// decode, call the service with the authenticated user id, encode.
package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"chatcore/internal/chat/service"
	"chatcore/internal/common"
	"chatcore/internal/dbmongo"
	"chatcore/internal/dbmysql"
)

type ChatHandler struct {
	conversations service.ConversationService
	messages      service.MessageService
	participants  service.ParticipantService
	attachments   *dbmongo.AttachmentStorage
	logger        *zap.SugaredLogger
}

func NewChatHandler(
	conversations service.ConversationService,
	messages service.MessageService,
	participants service.ParticipantService,
	attachments *dbmongo.AttachmentStorage,
	logger *zap.SugaredLogger,
) *ChatHandler {
	return &ChatHandler{
		conversations: conversations,
		messages:      messages,
		participants:  participants,
		attachments:   attachments,
		logger:        logger,
	}
}

func (h *ChatHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/conversations", h.createConversation).Methods(http.MethodPost)
	r.HandleFunc("/conversations", h.listConversations).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{id}", h.getConversation).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{id}", h.deleteConversation).Methods(http.MethodDelete)
	r.HandleFunc("/conversations/{id}/archive", h.archiveConversation).Methods(http.MethodPost)

	r.HandleFunc("/messages", h.createMessage).Methods(http.MethodPost)
	r.HandleFunc("/conversations/{id}/messages", h.listMessages).Methods(http.MethodGet)
	r.HandleFunc("/messages/{id}", h.updateMessage).Methods(http.MethodPatch)
	r.HandleFunc("/messages/{id}", h.deleteMessage).Methods(http.MethodDelete)
	r.HandleFunc("/messages/{id}/status", h.updateMessageStatus).Methods(http.MethodPatch)

	r.HandleFunc("/attachments/{id}", h.downloadAttachment).Methods(http.MethodGet)

	r.HandleFunc("/conversations/{id}/participants", h.addParticipant).Methods(http.MethodPost)
	r.HandleFunc("/conversations/{id}/participants/{participantID}", h.removeParticipant).Methods(http.MethodDelete)
	r.HandleFunc("/conversations/{id}/participants/{userID}/type", h.updateParticipantType).Methods(http.MethodPatch)
	r.HandleFunc("/participants/{id}/last-seen", h.updateLastSeen).Methods(http.MethodPut)
	r.HandleFunc("/participants/{id}/last-received", h.updateLastReceived).Methods(http.MethodPut)
}

func (h *ChatHandler) createConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req service.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.conversations.Create(r.Context(), userID, &req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, view)
}

func (h *ChatHandler) listConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	page, err := h.conversations.List(r.Context(), userID, cursorParam(r), limitParam(r))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page)
}

func (h *ChatHandler) getConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	view, err := h.conversations.Get(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, view)
}

func (h *ChatHandler) deleteConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := h.conversations.Delete(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ChatHandler) archiveConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := h.conversations.Archive(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

type createMessageBody struct {
	ConversationID   *string                   `json:"conversation_id,omitempty"`
	Receivers        []service.ParticipantSeed `json:"receivers,omitempty"`
	Content          string                    `json:"content"`
	Type             dbmysql.MessageType       `json:"type,omitempty"`
	ReplyToMessageID *string                   `json:"reply_to_message_id,omitempty"`
	Extra            string                    `json:"extra,omitempty"`
}

func (h *ChatHandler) createMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	req, err := decodeMessageRequest(r)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.messages.Create(r.Context(), userID, req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, view)
}

// decodeMessageRequest accepts a JSON body or, for media messages, a
// multipart form with a "payload" JSON field and a "file" part.
func decodeMessageRequest(r *http.Request) (*service.CreateMessageRequest, error) {
	var body createMessageBody

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &body); err != nil {
			return nil, err
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return &service.CreateMessageRequest{
			ConversationID:   body.ConversationID,
			Receivers:        body.Receivers,
			Content:          body.Content,
			Type:             body.Type,
			ReplyToMessageID: body.ReplyToMessageID,
			Extra:            body.Extra,
			Attachment: &service.AttachmentUpload{
				Filename: header.Filename,
				MimeType: header.Header.Get("Content-Type"),
				Content:  file,
			},
		}, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &service.CreateMessageRequest{
		ConversationID:   body.ConversationID,
		Receivers:        body.Receivers,
		Content:          body.Content,
		Type:             body.Type,
		ReplyToMessageID: body.ReplyToMessageID,
		Extra:            body.Extra,
	}, nil
}

func (h *ChatHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	page, err := h.messages.List(r.Context(), mux.Vars(r)["id"], userID, cursorParam(r), limitParam(r))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page)
}

func (h *ChatHandler) updateMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.messages.Update(r.Context(), mux.Vars(r)["id"], userID, body.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, view)
}

func (h *ChatHandler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	deleted, err := h.messages.Delete(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *ChatHandler) updateMessageStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var body struct {
		Status dbmysql.MessageStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.messages.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ChatHandler) downloadAttachment(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	stream, att, err := h.attachments.Download(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "attachment not found", http.StatusNotFound)
		return
	}

	if att.MimeType != "" {
		w.Header().Set("Content-Type", att.MimeType)
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+att.Filename+`"`)
	if _, err := io.Copy(w, stream); err != nil {
		h.logger.Warnw("attachment stream failed", "attachment_id", att.ID, "error", err)
	}
}

func (h *ChatHandler) addParticipant(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req service.AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.ConversationID = mux.Vars(r)["id"]

	participant, err := h.participants.Add(r.Context(), &req, userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, participant)
}

func (h *ChatHandler) removeParticipant(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	if err := h.participants.Remove(r.Context(), vars["participantID"], vars["id"], userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ChatHandler) updateParticipantType(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var body struct {
		Type dbmysql.ParticipantType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	if err := h.participants.UpdateType(r.Context(), vars["id"], vars["userID"], body.Type, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ChatHandler) updateLastSeen(w http.ResponseWriter, r *http.Request) {
	h.updatePointer(w, r, h.participants.UpdateLastSeen)
}

func (h *ChatHandler) updateLastReceived(w http.ResponseWriter, r *http.Request) {
	h.updatePointer(w, r, h.participants.UpdateLastReceived)
}

func (h *ChatHandler) updatePointer(w http.ResponseWriter, r *http.Request, update func(ctx context.Context, participantID, messageID, currentUserID string) error) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var body struct {
		MessageID string `json:"message_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := update(r.Context(), mux.Vars(r)["id"], body.MessageID, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

func cursorParam(r *http.Request) *string {
	if c := r.URL.Query().Get("cursor"); c != "" {
		return &c
	}
	return nil
}

func limitParam(r *http.Request) int {
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			return n
		}
	}
	return 0
}
