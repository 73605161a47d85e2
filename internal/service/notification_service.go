package service

import (
	"context"
	"encoding/json"

	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/model"
	"feedback-forum-be/internal/pkg/logger"
	"feedback-forum-be/internal/repository/unitofwork"
	"feedback-forum-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationHub pushes payloads to connected websocket clients. Implemented
// by the websocket package; declared here so the service does not import it.
type NotificationHub interface {
	Send(userId uuid.UUID, payload interface{})
	Broadcast(payload interface{})
}

// ModerationMailer alerts the moderation inbox about new posts.
type ModerationMailer interface {
	SendModerationAlert(title, body string) error
}

type INotificationService interface {
	// Start consumes the forum event topic until ctx is cancelled.
	Start(ctx context.Context) error
	ListForUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.NotificationResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error
	UnreadCount(ctx context.Context, userId uuid.UUID) (int64, error)
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	pubSub     *gochannel.GoChannel
	hub        NotificationHub
	mailer     ModerationMailer // may be nil when SMTP is not configured
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	pubSub *gochannel.GoChannel,
	hub NotificationHub,
	mailer ModerationMailer,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		pubSub:     pubSub,
		hub:        hub,
		mailer:     mailer,
		logger:     log,
	}
}

func (s *notificationService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, ForumEventsTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var envelope eventEnvelope
			if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
				s.logger.Warn("Notification", "Dropping malformed event", map[string]interface{}{
					"error": err.Error(),
				})
				msg.Ack()
				continue
			}
			s.handle(ctx, envelope)
			msg.Ack()
		}
	}()
	return nil
}

func (s *notificationService) handle(ctx context.Context, envelope eventEnvelope) {
	switch envelope.Type {
	case events.TypeFeedbackCreated:
		s.onFeedbackCreated(envelope)
	case events.TypeCommentCreated:
		s.onCommentCreated(ctx, envelope)
	case events.TypeCommentLiked:
		s.onCommentLiked(ctx, envelope)
	default:
		s.logger.Warn("Notification", "Unhandled event type", map[string]interface{}{
			"type": envelope.Type,
		})
	}
}

func (s *notificationService) onFeedbackCreated(envelope eventEnvelope) {
	s.hub.Broadcast(map[string]interface{}{
		"type":    envelope.Type,
		"payload": envelope.Payload,
	})

	if s.mailer != nil {
		title, _ := envelope.Payload["title"].(string)
		if err := s.mailer.SendModerationAlert("New feedback posted", title); err != nil {
			s.logger.Warn("Notification", "Failed to send moderation alert", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func (s *notificationService) onCommentCreated(ctx context.Context, envelope eventEnvelope) {
	ownerId, ok := payloadUUID(envelope.Payload, "owner_id")
	if !ok {
		return
	}
	authorId, _ := payloadUUID(envelope.Payload, "author_id")
	feedbackId, _ := payloadUUID(envelope.Payload, "feedback_id")
	if ownerId == authorId {
		// No self-notification for replying to your own post.
		return
	}

	s.deliver(ctx, &model.Notification{
		Id:         uuid.New(),
		UserId:     ownerId,
		ActorId:    &authorId,
		TypeCode:   envelope.Type,
		EntityType: "feedback",
		EntityId:   &feedbackId,
		Title:      "New comment on your feedback",
		Message:    "Someone commented on your feedback post.",
		Metadata:   mustMetadata(envelope.Payload),
	})
}

func (s *notificationService) onCommentLiked(ctx context.Context, envelope eventEnvelope) {
	ownerId, ok := payloadUUID(envelope.Payload, "owner_id")
	if !ok {
		return
	}
	actorId, _ := payloadUUID(envelope.Payload, "actor_id")
	commentId, _ := payloadUUID(envelope.Payload, "comment_id")
	if ownerId == actorId {
		return
	}

	s.deliver(ctx, &model.Notification{
		Id:         uuid.New(),
		UserId:     ownerId,
		ActorId:    &actorId,
		TypeCode:   envelope.Type,
		EntityType: "comment",
		EntityId:   &commentId,
		Title:      "Your comment was liked",
		Message:    "Someone liked your comment.",
		Metadata:   mustMetadata(envelope.Payload),
	})
}

// deliver persists the notification and pushes it to the live connection if
// one exists. A failed insert is logged, not fatal: the event was already
// consumed.
func (s *notificationService) deliver(ctx context.Context, notification *model.Notification) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		s.logger.Error("Notification", "Failed to persist notification", map[string]interface{}{
			"user_id": notification.UserId.String(),
			"type":    notification.TypeCode,
			"error":   err.Error(),
		})
		return
	}
	s.hub.Send(notification.UserId, notification)
}

func (s *notificationService) ListForUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.NotificationResponse, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.NotificationRepository().FindByUser(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NotificationResponse, len(rows))
	for i, n := range rows {
		responses[i] = &dto.NotificationResponse{
			Id:        n.Id,
			TypeCode:  n.TypeCode,
			Title:     n.Title,
			Message:   n.Message,
			EntityId:  n.EntityId,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	return responses, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, id, userId)
}

func (s *notificationService) UnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().CountUnread(ctx, userId)
}

func payloadUUID(payload map[string]interface{}, key string) (uuid.UUID, bool) {
	raw, ok := payload[key].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func mustMetadata(payload map[string]interface{}) datatypes.JSON {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
