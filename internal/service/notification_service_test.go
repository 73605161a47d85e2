package service

import (
	"context"
	"testing"

	"feedback-forum-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeMailer struct {
	alerts []string
	err    error
}

func (m *fakeMailer) SendModerationAlert(title, body string) error {
	m.alerts = append(m.alerts, title+": "+body)
	return m.err
}

func newNotificationServiceForTest(uow *fakeUow, hub *fakeHub, mailer ModerationMailer) *notificationService {
	svc := NewNotificationService(&fakeFactory{uow: uow}, nil, hub, mailer, nopLogger{})
	return svc.(*notificationService)
}

func TestPayloadUUID(t *testing.T) {
	id := uuid.New()
	payload := map[string]interface{}{
		"good":    id.String(),
		"garbage": "not-a-uuid",
		"number":  42,
	}

	got, ok := payloadUUID(payload, "good")
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = payloadUUID(payload, "garbage")
	assert.False(t, ok)

	_, ok = payloadUUID(payload, "number")
	assert.False(t, ok)

	_, ok = payloadUUID(payload, "missing")
	assert.False(t, ok)
}

func TestFeedbackCreatedBroadcastsAndAlerts(t *testing.T) {
	hub := newFakeHub()
	mailer := &fakeMailer{}
	svc := newNotificationServiceForTest(newFakeUow(), hub, mailer)

	event := events.NewFeedbackCreated(uuid.New(), uuid.New(), "dark mode")
	svc.handle(context.Background(), eventEnvelope{
		Type:    event.EventType(),
		Payload: event.Payload(),
	})

	assert.Len(t, hub.broadcast, 1)
	assert.Len(t, mailer.alerts, 1)
	assert.Contains(t, mailer.alerts[0], "dark mode")
}

func TestFeedbackCreatedWithoutMailerStillBroadcasts(t *testing.T) {
	hub := newFakeHub()
	svc := newNotificationServiceForTest(newFakeUow(), hub, nil)

	event := events.NewFeedbackCreated(uuid.New(), uuid.New(), "x")
	svc.handle(context.Background(), eventEnvelope{
		Type:    event.EventType(),
		Payload: event.Payload(),
	})

	assert.Len(t, hub.broadcast, 1)
}

func TestCommentCreatedSkipsSelfNotification(t *testing.T) {
	owner := uuid.New()

	uow := newFakeUow()
	hub := newFakeHub()
	svc := newNotificationServiceForTest(uow, hub, nil)

	event := events.NewCommentCreated(uuid.New(), uuid.New(), owner, owner)
	svc.handle(context.Background(), eventEnvelope{
		Type:    event.EventType(),
		Payload: event.Payload(),
	})

	assert.Empty(t, uow.notifs.created)
	assert.Empty(t, hub.sent)
}

func TestCommentCreatedPersistsAndPushesToOwner(t *testing.T) {
	owner := uuid.New()
	author := uuid.New()
	feedbackId := uuid.New()

	uow := newFakeUow()
	hub := newFakeHub()
	svc := newNotificationServiceForTest(uow, hub, nil)

	event := events.NewCommentCreated(uuid.New(), feedbackId, owner, author)
	svc.handle(context.Background(), eventEnvelope{
		Type:    event.EventType(),
		Payload: event.Payload(),
	})

	assert.Len(t, uow.notifs.created, 1)
	n := uow.notifs.created[0]
	assert.Equal(t, owner, n.UserId)
	assert.Equal(t, &author, n.ActorId)
	assert.Equal(t, events.TypeCommentCreated, n.TypeCode)
	assert.Equal(t, "feedback", n.EntityType)
	assert.Equal(t, &feedbackId, n.EntityId)

	assert.Len(t, hub.sent[owner], 1)
}

func TestCommentLikedNotifiesCommentOwner(t *testing.T) {
	owner := uuid.New()
	actor := uuid.New()
	commentId := uuid.New()

	uow := newFakeUow()
	hub := newFakeHub()
	svc := newNotificationServiceForTest(uow, hub, nil)

	event := events.NewCommentLiked(commentId, owner, actor)
	svc.handle(context.Background(), eventEnvelope{
		Type:    event.EventType(),
		Payload: event.Payload(),
	})

	assert.Len(t, uow.notifs.created, 1)
	n := uow.notifs.created[0]
	assert.Equal(t, "comment", n.EntityType)
	assert.Equal(t, &commentId, n.EntityId)
	assert.Len(t, hub.sent[owner], 1)
}

func TestUnhandledEventTypeIsIgnored(t *testing.T) {
	uow := newFakeUow()
	hub := newFakeHub()
	svc := newNotificationServiceForTest(uow, hub, nil)

	svc.handle(context.Background(), eventEnvelope{Type: "SOMETHING_ELSE"})

	assert.Empty(t, uow.notifs.created)
	assert.Empty(t, hub.broadcast)
}

func TestListForUserDefaultsLimit(t *testing.T) {
	uow := newFakeUow()
	svc := newNotificationServiceForTest(uow, newFakeHub(), nil)

	res, err := svc.ListForUser(context.Background(), uuid.New(), 0, 0)

	assert.NoError(t, err)
	assert.Empty(t, res)
}
