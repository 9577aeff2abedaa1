package relayv1_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/im-relay/api/relay/v1"
)

func TestDescriptorsRegistered(t *testing.T) {
	for _, name := range []protoreflect.FullName{"relay.v1.AuthService", "relay.v1.MessageService"} {
		d, err := protoregistry.GlobalFiles.FindDescriptorByName(name)
		require.NoError(t, err, name)
		_, ok := d.(protoreflect.ServiceDescriptor)
		require.True(t, ok, name)
	}

	mt, err := protoregistry.GlobalTypes.FindMessageByName("relay.v1.PollRequest")
	require.NoError(t, err)
	require.Equal(t, "startTimestamp", mt.Descriptor().Fields().ByNumber(3).JSONName())
}

func TestMarshal_BoolLeadingMessages(t *testing.T) {
	b, err := proto.Marshal(&pb.SendMessageResponse{Success: true})
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x01}, b)

	in := &pb.AuthResponse{
		Success:    true,
		Reason:     pb.AuthReason_CHALLENGE_REQUIRED,
		SessionKey: "k",
		Challenges: []*pb.Challenge{{Type: pb.ChallengeType_EMAIL_CODE, Detail: "a***@x"}},
	}
	b, err = proto.Marshal(in)
	require.NoError(t, err)
	var out pb.AuthResponse
	require.NoError(t, proto.Unmarshal(b, &out))
	require.True(t, proto.Equal(in, &out))
	require.Equal(t, "CHALLENGE_REQUIRED", out.GetReason().String())
}

func TestMarshal_Timestamps(t *testing.T) {
	in := &pb.ChatMessage{SenderId: "bob", Message: "hi", Timestamp: timestamppb.New(timestamppb.Now().AsTime())}
	b, err := proto.Marshal(in)
	require.NoError(t, err)
	var out pb.ChatMessage
	require.NoError(t, proto.Unmarshal(b, &out))
	require.True(t, in.GetTimestamp().AsTime().Equal(out.GetTimestamp().AsTime()))
}
