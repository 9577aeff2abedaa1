// Package grpcserver exposes the relay gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/im-relay/api/relay/v1"
	"github.com/and161185/im-relay/internal/chat"
	"github.com/and161185/im-relay/internal/convert"
	"github.com/and161185/im-relay/internal/errs"
	"github.com/and161185/im-relay/internal/model"
	"github.com/and161185/im-relay/internal/service"
)

// Server wires services into gRPC handlers of both relay services.
type Server struct {
	pb.UnimplementedAuthServiceServer
	pb.UnimplementedMessageServiceServer
	auth service.AuthService
	msgs service.MessageService
	log  *zap.Logger
}

// New constructs a gRPC server with injected services.
func New(auth service.AuthService, msgs service.MessageService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{auth: auth, msgs: msgs, log: log}
}

// Register registers both relay services on r.
func (s *Server) Register(r grpc.ServiceRegistrar) {
	pb.RegisterAuthServiceServer(r, s)
	pb.RegisterMessageServiceServer(r, s)
}

// toStatus maps service errors to gRPC status errors.
func (s *Server) toStatus(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	case errors.Is(err, errs.ErrSessionNotFound):
		return status.Error(codes.NotFound, "session not found")
	case errors.Is(err, errs.ErrNotLoggedOn):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, errs.ErrFriendsNotLoaded):
		return status.Error(codes.DeadlineExceeded, "friends list not loaded")
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, errs.ErrInvalidArgument),
		errors.Is(err, errs.ErrInvalidTarget),
		errors.Is(err, errs.ErrInvalidMessage):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, chat.ErrConnectionClosed):
		return status.Error(codes.Unavailable, "network connection closed")
	default:
		s.log.Error(op, zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed", op)
	}
}

// --- Auth ---

// Authenticate creates or resumes a session and reports the login outcome.
// Network faults are reported as UNKNOWN_ERROR, not as a status.
func (s *Server) Authenticate(ctx context.Context, req *pb.AuthRequest) (*pb.AuthResponse, error) {
	res, err := s.auth.Authenticate(ctx, service.AuthRequest{
		SessionKey:   model.SessionKey(req.GetSessionKey()),
		Username:     req.GetUsername(),
		Password:     req.GetPassword(),
		RefreshToken: req.GetRefreshToken(),
		Code:         req.GetGuardCode(),
		PeerIP:       remoteIP(ctx),
	})
	switch {
	case err == nil:
		return convert.ToProtoAuthResponse(res), nil
	case errors.Is(err, errs.ErrInvalidArgument),
		errors.Is(err, errs.ErrRateLimited),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return nil, s.toStatus("authenticate", err)
	default:
		s.log.Warn("authenticate", zap.Error(err))
		return &pb.AuthResponse{Reason: pb.AuthReason_UNKNOWN_ERROR, SessionKey: req.GetSessionKey()}, nil
	}
}

// LogOff disconnects a session.
func (s *Server) LogOff(ctx context.Context, req *pb.LogOffRequest) (*emptypb.Empty, error) {
	if err := s.auth.LogOff(ctx, model.SessionKey(req.GetSessionKey())); err != nil {
		return nil, s.toStatus("log off", err)
	}
	return &emptypb.Empty{}, nil
}

// --- Messages ---

// SendChatMessage sends one message and reports the outcome as a reason code.
func (s *Server) SendChatMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	err := s.msgs.Send(ctx, model.SessionKey(req.GetSessionKey()), req.GetTargetId(), req.GetMessage())
	var reason pb.SendReason
	switch {
	case err == nil:
		reason = pb.SendReason_SEND_SUCCESS
	case errors.Is(err, errs.ErrSessionNotFound):
		reason = pb.SendReason_INVALID_SESSION_KEY
	case errors.Is(err, errs.ErrInvalidTarget):
		reason = pb.SendReason_INVALID_TARGET_ID
	case errors.Is(err, errs.ErrInvalidMessage):
		reason = pb.SendReason_INVALID_MESSAGE
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, s.toStatus("send", err)
	default:
		s.log.Warn("send", zap.Error(err))
		reason = pb.SendReason_SEND_UNKNOWN_ERROR
	}
	return &pb.SendMessageResponse{Success: err == nil, Reason: reason}, nil
}

// PollChatMessages streams the conversation history, oldest first.
func (s *Server) PollChatMessages(req *pb.PollRequest, stream grpc.ServerStreamingServer[pb.ChatMessage]) error {
	msgs, err := s.msgs.Poll(stream.Context(), model.SessionKey(req.GetSessionKey()), req.GetTargetId(),
		convert.FromProtoTime(req.GetStartTimestamp()), convert.FromProtoTime(req.GetLastTimestamp()))
	if err != nil {
		return s.toStatus("poll", err)
	}
	for _, m := range msgs {
		if err := stream.Send(convert.ToProtoChatMessage(m)); err != nil {
			return err
		}
	}
	return nil
}

// StreamChatMessages pushes incoming messages until the client goes away or
// the network connection closes.
func (s *Server) StreamChatMessages(req *pb.StreamRequest, stream grpc.ServerStreamingServer[pb.ChatMessage]) error {
	err := s.msgs.Stream(stream.Context(), model.SessionKey(req.GetSessionKey()), func(m model.ChatMessage) error {
		return stream.Send(convert.ToProtoChatMessage(m))
	})
	if err != nil {
		if st, ok := status.FromError(err); ok {
			return st.Err()
		}
		return s.toStatus("stream", err)
	}
	return nil
}

// GetActiveMessageSessions lists conversations with recent activity.
func (s *Server) GetActiveMessageSessions(ctx context.Context, req *pb.ActiveSessionsRequest) (*pb.ActiveSessionsResponse, error) {
	as, err := s.msgs.ActiveSessions(ctx, model.SessionKey(req.GetSessionKey()), convert.FromProtoTime(req.GetSince()))
	if err != nil {
		return nil, s.toStatus("active sessions", err)
	}
	return convert.ToProtoActiveSessions(as), nil
}

// AckFriendMessage marks a conversation read up to a timestamp.
func (s *Server) AckFriendMessage(ctx context.Context, req *pb.AckRequest) (*emptypb.Empty, error) {
	err := s.msgs.Ack(ctx, model.SessionKey(req.GetSessionKey()), req.GetTargetId(), convert.FromProtoTime(req.GetLastTimestamp()))
	if err != nil {
		return nil, s.toStatus("ack", err)
	}
	return &emptypb.Empty{}, nil
}

// GetFriendsList returns the session's account and its contacts.
func (s *Server) GetFriendsList(ctx context.Context, req *pb.FriendsListRequest) (*pb.FriendsListResponse, error) {
	fl, err := s.msgs.FriendsList(ctx, model.SessionKey(req.GetSessionKey()))
	if err != nil {
		return nil, s.toStatus("friends list", err)
	}
	return convert.ToProtoFriendsList(fl), nil
}
