package convert

import (
	"time"

	pb "github.com/and161185/im-relay/api/relay/v1"
	model "github.com/and161185/im-relay/internal/model"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// FromProtoTime returns the zero time for a missing or invalid timestamp.
func FromProtoTime(p *timestamppb.Timestamp) time.Time {
	if p == nil || p.CheckValid() != nil {
		return time.Time{}
	}
	return p.AsTime()
}

// --- Authenticate ---

func toProtoChallengeType(t model.ChallengeType) pb.ChallengeType {
	switch t {
	case model.ChallengeEmailCode:
		return pb.ChallengeType_EMAIL_CODE
	case model.ChallengeDeviceCode:
		return pb.ChallengeType_DEVICE_CODE
	case model.ChallengeEmailConfirmation:
		return pb.ChallengeType_EMAIL_CONFIRMATION
	case model.ChallengeDeviceConfirmation:
		return pb.ChallengeType_DEVICE_CONFIRMATION
	default:
		return pb.ChallengeType_CHALLENGE_TYPE_UNSPECIFIED
	}
}

// ToProtoAuthReason maps a domain outcome to the wire enum.
func ToProtoAuthReason(r model.AuthReason) pb.AuthReason {
	switch r {
	case model.ReasonSuccess:
		return pb.AuthReason_SUCCESS
	case model.ReasonChallengeRequired:
		return pb.AuthReason_CHALLENGE_REQUIRED
	case model.ReasonInvalidCredentials:
		return pb.AuthReason_INVALID_CREDENTIALS
	default:
		return pb.AuthReason_UNKNOWN_ERROR
	}
}

// ToProtoAuthResponse converts the result of one Authenticate call.
func ToProtoAuthResponse(r model.AuthResult) *pb.AuthResponse {
	out := &pb.AuthResponse{
		Success:    r.Succeeded(),
		Reason:     ToProtoAuthReason(r.Reason),
		SessionKey: string(r.SessionKey),
	}
	if r.Succeeded() {
		out.RefreshToken = r.RefreshToken
	}
	if len(r.Challenges) > 0 {
		out.Challenges = make([]*pb.Challenge, 0, len(r.Challenges))
		for _, c := range r.Challenges {
			out.Challenges = append(out.Challenges, &pb.Challenge{
				Type:   toProtoChallengeType(c.Type),
				Detail: c.Detail,
			})
		}
	}
	return out
}

// --- Messages ---

// ToProtoChatMessage converts one chat message.
func ToProtoChatMessage(m model.ChatMessage) *pb.ChatMessage {
	return &pb.ChatMessage{
		SenderId:  m.SenderID,
		Message:   m.Body,
		Timestamp: ts(m.Timestamp),
	}
}

// ToProtoActiveSessions converts the open-conversation summary.
func ToProtoActiveSessions(a model.ActiveSessions) *pb.ActiveSessionsResponse {
	out := &pb.ActiveSessionsResponse{
		Sessions:  make([]*pb.ActiveSession, 0, len(a.Sessions)),
		Timestamp: ts(a.Timestamp),
	}
	for _, s := range a.Sessions {
		out.Sessions = append(out.Sessions, &pb.ActiveSession{
			TargetId:             s.TargetID,
			LastMessageTimestamp: ts(s.LastMessage),
			LastViewTimestamp:    ts(s.LastView),
			UnreadCount:          uint32(max(s.Unread, 0)),
		})
	}
	return out
}

// --- Friends ---

// ToProtoPersona converts one friends-list entry.
func ToProtoPersona(p model.Persona) *pb.Persona {
	out := &pb.Persona{
		Id:             p.ID,
		Name:           p.Name,
		PersonaState:   int32(p.State),
		GameId:         p.GameID,
		GameName:       p.GameName,
		Relationship:   int32(p.Relationship),
		LastLogon:      ts(p.LastLogon),
		LastLogoff:     ts(p.LastLogoff),
		LastSeenOnline: ts(p.LastSeenOnline),
	}
	if p.Avatar != (model.Avatar{}) {
		out.AvatarUrl = &pb.AvatarUrl{Icon: p.Avatar.Icon, Medium: p.Avatar.Medium, Full: p.Avatar.Full}
	}
	return out
}

// ToProtoFriendsList converts the logged-on user and their contacts.
func ToProtoFriendsList(fl model.FriendsList) *pb.FriendsListResponse {
	out := &pb.FriendsListResponse{
		User:    ToProtoPersona(fl.Self),
		Friends: make([]*pb.Persona, 0, len(fl.Friends)),
	}
	for _, f := range fl.Friends {
		out.Friends = append(out.Friends, ToProtoPersona(f))
	}
	return out
}
