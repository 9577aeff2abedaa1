// Command relay is a CLI client for the im-relay service.
package main

import (
	"bufio"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v5"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/im-relay/api/relay/v1"
	clientcrypto "github.com/and161185/im-relay/internal/crypto/clientcrypto"
)

// envSecret seals the stored refresh tokens when set.
const envSecret = "RELAY_SECRET"

// maxCodeAttempts bounds guard code prompts per login.
const maxCodeAttempts = 3

// ---- config/token store ----

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "im-relay")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "im-relay")
}

// fileSafe turns a server address into a file name component.
func fileSafe(addr string) string {
	return strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(addr)
}

func sessionPath(addr string) string { return filepath.Join(cfgDir(), "session-"+fileSafe(addr)) }

func tokensPath(addr string) string { return filepath.Join(cfgDir(), "tokens-"+fileSafe(addr)) }

func saveSession(addr, key string) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	return os.WriteFile(sessionPath(addr), []byte(strings.TrimSpace(key)), 0o600)
}

func loadSession(addr string) (string, error) {
	b, err := os.ReadFile(sessionPath(addr))
	if errors.Is(err, os.ErrNotExist) {
		return "", errors.New("no session (login first)")
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func clearSession(addr string) error {
	err := os.Remove(sessionPath(addr))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// saveTokens writes the username to refresh token map for addr. The map is
// sealed with secret when it is not empty; addr is bound as associated data.
func saveTokens(addr string, tokens map[string]string, secret string) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	if secret != "" {
		if b, err = clientcrypto.Seal([]byte(secret), b, []byte(addr)); err != nil {
			return err
		}
	}
	return os.WriteFile(tokensPath(addr), b, 0o600)
}

// loadTokens reads the refresh token map for addr. A missing file is an
// empty map.
func loadTokens(addr, secret string) (map[string]string, error) {
	b, err := os.ReadFile(tokensPath(addr))
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if clientcrypto.IsSealed(b) {
		if secret == "" {
			return nil, fmt.Errorf("token store is sealed; set %s", envSecret)
		}
		if b, err = clientcrypto.Open([]byte(secret), b, []byte(addr)); err != nil {
			return nil, fmt.Errorf("open token store: %w", err)
		}
	}
	tokens := map[string]string{}
	if err := json.Unmarshal(b, &tokens); err != nil {
		return nil, fmt.Errorf("token store: %w", err)
	}
	return tokens, nil
}

// tokenUsable reports whether a stored refresh token has not expired yet.
// The signature is the server's business; only exp is read here.
func tokenUsable(tok string, now time.Time) bool {
	if tok == "" {
		return false
	}
	var claims jwt.RegisteredClaims
	_, _, err := jwt.NewParser().ParseUnverified(tok, &claims)
	if err != nil {
		return false
	}
	return claims.ExpiresAt == nil || claims.ExpiresAt.After(now)
}

// ---- grpc dial ----

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

type clients struct {
	auth pb.AuthServiceClient
	msgs pb.MessageServiceClient
}

func dial(ctx context.Context, addr, caPath string, insecure bool) (*grpc.ClientConn, clients, error) {
	creds, err := loadTLS(caPath, insecure)
	if err != nil {
		return nil, clients{}, err
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(ctx, addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, clients{}, err
	}
	return cc, clients{auth: pb.NewAuthServiceClient(cc), msgs: pb.NewMessageServiceClient(cc)}, nil
}

// ---- utils ----

var jsonOut = protojson.MarshalOptions{Multiline: true, Indent: "  "}

// printProto writes m as indented JSON.
func printProto(w io.Writer, m proto.Message) {
	b, err := jsonOut.Marshal(m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintln(w, string(b))
}

// parseWhen accepts RFC 3339, unix milliseconds or a duration meaning
// "that long ago". Empty input is nil.
func parseWhen(s string, now time.Time) (*timestamppb.Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return timestamppb.New(t), nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return timestamppb.New(time.UnixMilli(ms)), nil
	}
	if d, err := time.ParseDuration(s); err == nil && d >= 0 {
		return timestamppb.New(now.Add(-d)), nil
	}
	return nil, fmt.Errorf("bad time %q: want RFC3339, unix ms or a duration", s)
}

func tsString(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().UTC().Format(time.RFC3339Nano)
}

func promptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("password required (-p) when stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	return string(b), err
}

func promptLine(r *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	s, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func needsCode(t pb.ChallengeType) bool {
	return t == pb.ChallengeType_EMAIL_CODE || t == pb.ChallengeType_DEVICE_CODE
}

func usage() {
	fmt.Fprintf(os.Stderr, `relay CLI
Usage:
  relay [--addr HOST:PORT] [--cacert file | --insecure] <cmd> [args]

Commands:
  version
  login     -u <username> [-p <password>] [--code <guard code>]   (saves session and refresh token)
  logoff
  send      --to <id> -m <text>
  poll      --to <id> [--since <when>] [--until <when>]
  stream                                                        (until Ctrl-C)
  friends
  sessions  [--since <when>]
  ack       --to <id> --ts <when>

<when> is RFC3339, unix milliseconds or a duration ago (e.g. 2h).
Refresh tokens are sealed with $%s when it is set.
`, envSecret)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands over one gRPC connection.
func main() {
	// global flags
	fl := flag.NewFlagSet("relay", flag.ExitOnError)
	addr := fl.String("addr", "localhost:8443", "server addr")
	caPath := fl.String("cacert", "", "CA cert (PEM)")
	insecure := fl.Bool("insecure", false, "skip cert verify (dev)")
	fl.Usage = usage
	fl.SetInterspersed(false)
	_ = fl.Parse(os.Args[1:])

	if fl.NArg() < 1 {
		usage()
	}
	cmd, args := fl.Arg(0), fl.Args()[1:]

	if cmd == "version" {
		fmt.Printf("relay %s (%s)\n", version, buildDate)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if cmd != "stream" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
	}

	cc, cli, err := dial(ctx, *addr, *caPath, *insecure)
	if err != nil {
		fail(err)
	}
	defer cc.Close()

	switch cmd {
	case "login":
		cmdLogin(ctx, cli, *addr, args)
	case "logoff":
		cmdLogOff(ctx, cli, *addr)
	case "send":
		cmdSend(ctx, cli, *addr, args)
	case "poll":
		cmdPoll(ctx, cli, *addr, args)
	case "stream":
		cmdStream(ctx, cli, *addr)
	case "friends":
		key := mustSession(*addr)
		out, err := cli.msgs.GetFriendsList(ctx, &pb.FriendsListRequest{SessionKey: key})
		if err != nil {
			fail(err)
		}
		printProto(os.Stdout, out)
	case "sessions":
		fs := flag.NewFlagSet("sessions", flag.ExitOnError)
		since := fs.String("since", "", "only conversations active since <when>")
		_ = fs.Parse(args)
		ts, err := parseWhen(*since, time.Now())
		if err != nil {
			fail(err)
		}
		key := mustSession(*addr)
		out, err := cli.msgs.GetActiveMessageSessions(ctx, &pb.ActiveSessionsRequest{SessionKey: key, Since: ts})
		if err != nil {
			fail(err)
		}
		printProto(os.Stdout, out)
	case "ack":
		fs := flag.NewFlagSet("ack", flag.ExitOnError)
		to := fs.String("to", "", "friend account id")
		at := fs.String("ts", "", "last read message time")
		_ = fs.Parse(args)
		ts, err := parseWhen(*at, time.Now())
		if err != nil {
			fail(err)
		}
		if *to == "" || ts == nil {
			fmt.Fprintln(os.Stderr, "need --to and --ts")
			os.Exit(1)
		}
		key := mustSession(*addr)
		if _, err := cli.msgs.AckFriendMessage(ctx, &pb.AckRequest{SessionKey: key, TargetId: *to, LastTimestamp: ts}); err != nil {
			fail(err)
		}
		fmt.Println("ok")
	default:
		usage()
	}
}

func mustSession(addr string) string {
	key, err := loadSession(addr)
	if err != nil {
		fail(err)
	}
	return key
}

// cmdLogin tries a stored refresh token first, then the password with up to
// maxCodeAttempts guard codes.
func cmdLogin(ctx context.Context, cli clients, addr string, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.StringP("user", "u", "", "username")
	pass := fs.StringP("password", "p", "", "password (prompted when empty)")
	code := fs.String("code", "", "guard code for the first attempt")
	_ = fs.Parse(args)
	if *user == "" {
		fmt.Fprintln(os.Stderr, "need -u")
		os.Exit(1)
	}

	secret := os.Getenv(envSecret)
	tokens, err := loadTokens(addr, secret)
	if err != nil {
		fail(err)
	}

	if rt := tokens[*user]; *pass == "" && tokenUsable(rt, time.Now()) {
		resp, err := cli.auth.Authenticate(ctx, &pb.AuthRequest{Username: *user, RefreshToken: rt})
		if err != nil {
			fail(err)
		}
		if resp.GetSuccess() {
			finishLogin(addr, *user, tokens, secret, resp)
			return
		}
		fmt.Fprintf(os.Stderr, "stored token rejected (%s), using password\n", resp.GetReason())
		delete(tokens, *user)
	}

	if *pass == "" {
		if *pass, err = promptPassword("password: "); err != nil {
			fail(err)
		}
	}
	resp, err := cli.auth.Authenticate(ctx, &pb.AuthRequest{Username: *user, Password: *pass})
	if err != nil {
		fail(err)
	}

	in := bufio.NewReader(os.Stdin)
	for attempt := 0; resp.GetReason() == pb.AuthReason_CHALLENGE_REQUIRED; attempt++ {
		key := resp.GetSessionKey()
		ch := resp.GetChallenges()
		if len(ch) == 0 || !needsCode(ch[0].GetType()) {
			fmt.Fprintln(os.Stderr, "waiting for confirmation on another device...")
			resp, err = cli.auth.Authenticate(ctx, &pb.AuthRequest{SessionKey: key})
			if err != nil {
				fail(err)
			}
			continue
		}
		if attempt >= maxCodeAttempts {
			break
		}
		c := *code
		*code = ""
		if c == "" {
			prompt := "guard code: "
			if d := ch[0].GetDetail(); d != "" {
				prompt = fmt.Sprintf("guard code (sent to %s): ", d)
			}
			if c, err = promptLine(in, prompt); err != nil {
				fail(err)
			}
		}
		resp, err = cli.auth.Authenticate(ctx, &pb.AuthRequest{SessionKey: key, GuardCode: c})
		if err != nil {
			fail(err)
		}
		if resp.GetReason() == pb.AuthReason_INVALID_CREDENTIALS && attempt+1 < maxCodeAttempts {
			fmt.Fprintln(os.Stderr, "wrong code")
			resp = &pb.AuthResponse{Reason: pb.AuthReason_CHALLENGE_REQUIRED, SessionKey: key, Challenges: ch}
		}
	}

	if !resp.GetSuccess() {
		fmt.Fprintf(os.Stderr, "login failed: %s\n", resp.GetReason())
		os.Exit(1)
	}
	finishLogin(addr, *user, tokens, secret, resp)
}

func finishLogin(addr, user string, tokens map[string]string, secret string, resp *pb.AuthResponse) {
	if err := saveSession(addr, resp.GetSessionKey()); err != nil {
		fail(err)
	}
	if rt := resp.GetRefreshToken(); rt != "" {
		tokens[user] = rt
		if err := saveTokens(addr, tokens, secret); err != nil {
			fail(err)
		}
	}
	fmt.Println("ok")
}

func cmdLogOff(ctx context.Context, cli clients, addr string) {
	key := mustSession(addr)
	_, err := cli.auth.LogOff(ctx, &pb.LogOffRequest{SessionKey: key})
	if err != nil && status.Code(err) != codes.NotFound {
		fail(err)
	}
	if err := clearSession(addr); err != nil {
		fail(err)
	}
	fmt.Println("ok")
}

func cmdSend(ctx context.Context, cli clients, addr string, args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	to := fs.String("to", "", "friend account id")
	msg := fs.StringP("message", "m", "", "message text ('-' reads stdin)")
	_ = fs.Parse(args)
	if *to == "" || *msg == "" {
		fmt.Fprintln(os.Stderr, "need --to and -m")
		os.Exit(1)
	}
	body := *msg
	if body == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fail(err)
		}
		body = strings.TrimRight(string(b), "\n")
	}
	key := mustSession(addr)
	out, err := cli.msgs.SendChatMessage(ctx, &pb.SendMessageRequest{SessionKey: key, TargetId: *to, Message: body})
	if err != nil {
		fail(err)
	}
	if !out.GetSuccess() {
		fmt.Fprintf(os.Stderr, "send failed: %s\n", out.GetReason())
		os.Exit(1)
	}
	fmt.Println("ok")
}

func cmdPoll(ctx context.Context, cli clients, addr string, args []string) {
	fs := flag.NewFlagSet("poll", flag.ExitOnError)
	to := fs.String("to", "", "friend account id")
	since := fs.String("since", "", "oldest message time")
	until := fs.String("until", "", "newest message time")
	_ = fs.Parse(args)
	if *to == "" {
		fmt.Fprintln(os.Stderr, "need --to")
		os.Exit(1)
	}
	now := time.Now()
	start, err := parseWhen(*since, now)
	if err != nil {
		fail(err)
	}
	last, err := parseWhen(*until, now)
	if err != nil {
		fail(err)
	}
	key := mustSession(addr)
	st, err := cli.msgs.PollChatMessages(ctx, &pb.PollRequest{SessionKey: key, TargetId: *to, StartTimestamp: start, LastTimestamp: last})
	if err != nil {
		fail(err)
	}
	printMessages(st)
}

func cmdStream(ctx context.Context, cli clients, addr string) {
	key := mustSession(addr)
	st, err := cli.msgs.StreamChatMessages(ctx, &pb.StreamRequest{SessionKey: key})
	if err != nil {
		fail(err)
	}
	printMessages(st)
}

type messageStream interface {
	Recv() (*pb.ChatMessage, error)
}

// printMessages writes one line per message until the stream ends.
func printMessages(st messageStream) {
	for {
		m, err := st.Recv()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return
			}
			fail(err)
		}
		fmt.Println(formatMessage(m))
	}
}

func formatMessage(m *pb.ChatMessage) string {
	return fmt.Sprintf("%s %s: %s", tsString(m.GetTimestamp()), m.GetSenderId(), m.GetMessage())
}

// ---- helpers ----

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
