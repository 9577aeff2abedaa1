package convert

import (
	"testing"
	"time"

	pb "github.com/and161185/im-relay/api/relay/v1"
	model "github.com/and161185/im-relay/internal/model"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestFromProtoTime(t *testing.T) {
	t.Parallel()

	if !FromProtoTime(nil).IsZero() {
		t.Fatalf("nil timestamp must give zero time")
	}
	if !FromProtoTime(&timestamppb.Timestamp{Seconds: 1, Nanos: -1}).IsZero() {
		t.Fatalf("invalid timestamp must give zero time")
	}
	want := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	if got := FromProtoTime(timestamppb.New(want)); !got.Equal(want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestToProtoAuthResponse_Challenge(t *testing.T) {
	t.Parallel()

	r := model.AuthResult{
		Reason:       model.ReasonChallengeRequired,
		SessionKey:   "k",
		RefreshToken: "must-not-leak",
		Challenges: []model.Challenge{
			{Type: model.ChallengeEmailCode, Detail: "example.com"},
			{Type: model.ChallengeDeviceConfirmation},
		},
	}
	got := ToProtoAuthResponse(r)
	if got.Success || got.Reason != pb.AuthReason_CHALLENGE_REQUIRED || got.SessionKey != "k" {
		t.Fatalf("unexpected response: %v", got)
	}
	if got.RefreshToken != "" {
		t.Fatalf("refresh token sent with a non-success result")
	}
	if len(got.Challenges) != 2 ||
		got.Challenges[0].Type != pb.ChallengeType_EMAIL_CODE ||
		got.Challenges[0].Detail != "example.com" ||
		got.Challenges[1].Type != pb.ChallengeType_DEVICE_CONFIRMATION {
		t.Fatalf("challenges: %v", got.Challenges)
	}
}

func TestToProtoAuthReason(t *testing.T) {
	t.Parallel()

	cases := map[model.AuthReason]pb.AuthReason{
		model.ReasonUnknownError:       pb.AuthReason_UNKNOWN_ERROR,
		model.ReasonSuccess:            pb.AuthReason_SUCCESS,
		model.ReasonChallengeRequired:  pb.AuthReason_CHALLENGE_REQUIRED,
		model.ReasonInvalidCredentials: pb.AuthReason_INVALID_CREDENTIALS,
	}
	for in, want := range cases {
		if got := ToProtoAuthReason(in); got != want {
			t.Fatalf("%s: got %s want %s", in, got, want)
		}
	}
}

func TestToProtoAuthResponse_Success(t *testing.T) {
	t.Parallel()

	got := ToProtoAuthResponse(model.AuthResult{Reason: model.ReasonSuccess, SessionKey: "k", RefreshToken: "rt"})
	if !got.Success || got.RefreshToken != "rt" || len(got.Challenges) != 0 {
		t.Fatalf("unexpected response: %v", got)
	}
}

func TestToProtoChatMessage(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1_700_000_000_123)
	got := ToProtoChatMessage(model.ChatMessage{SenderID: "7", Body: "hi", Timestamp: at})
	if got.SenderId != "7" || got.Message != "hi" || !got.Timestamp.AsTime().Equal(at) {
		t.Fatalf("unexpected message: %v", got)
	}
	if ToProtoChatMessage(model.ChatMessage{}).Timestamp != nil {
		t.Fatalf("zero time must be omitted")
	}
}

func TestToProtoActiveSessions(t *testing.T) {
	t.Parallel()

	now := time.Now()
	got := ToProtoActiveSessions(model.ActiveSessions{
		Timestamp: now,
		Sessions: []model.ActiveSession{
			{TargetID: "2", LastMessage: now, Unread: 3},
			{TargetID: "3", Unread: -1},
		},
	})
	if len(got.Sessions) != 2 || got.Timestamp == nil {
		t.Fatalf("unexpected response: %v", got)
	}
	if got.Sessions[0].UnreadCount != 3 || got.Sessions[0].LastViewTimestamp != nil {
		t.Fatalf("session[0]: %v", got.Sessions[0])
	}
	if got.Sessions[1].UnreadCount != 0 {
		t.Fatalf("negative unread count must clamp to zero")
	}
}

func TestToProtoFriendsList(t *testing.T) {
	t.Parallel()

	fl := model.FriendsList{
		Self: model.Persona{User: model.User{ID: "1", Name: "me", State: model.PersonaOnline}},
		Friends: []model.Persona{
			{
				User: model.User{
					ID:     "2",
					Name:   "bob",
					State:  model.PersonaUnknown,
					Avatar: model.Avatar{Icon: "i", Medium: "m", Full: "f"},
					GameID: 440,
				},
				Relationship: model.RelationshipFriend,
			},
		},
	}
	got := ToProtoFriendsList(fl)
	if got.User.GetId() != "1" || got.User.AvatarUrl != nil {
		t.Fatalf("self: %v", got.User)
	}
	if len(got.Friends) != 1 {
		t.Fatalf("friends: %v", got.Friends)
	}
	f := got.Friends[0]
	if f.PersonaState != int32(model.PersonaUnknown) || f.Relationship != int32(model.RelationshipFriend) {
		t.Fatalf("persona enums: %v", f)
	}
	if f.GetAvatarUrl().GetFull() != "f" || f.GameId != 440 {
		t.Fatalf("persona fields: %v", f)
	}
}
