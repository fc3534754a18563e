package wa

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/mdp/qrterminal"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	walog "go.mau.fi/whatsmeow/util/log"
	_ "modernc.org/sqlite"
)

// IncomingMessage is the transport-neutral view of a text message.
type IncomingMessage struct {
	Chat     types.JID
	SenderID string
	PushName string
	Text     string
	IsGroup  bool
}

type MessageHandler func(ctx context.Context, msg IncomingMessage) (reply string, err error)

// ReplyPacing delays replies so the bot does not answer instantly.
type ReplyPacing struct {
	MinDelay   time.Duration
	MaxDelay   time.Duration
	ShowTyping bool
}

type Service struct {
	client     *whatsmeow.Client
	dbBasePath string
	log        walog.Logger
	pacing     ReplyPacing
	handler    MessageHandler
}

func NewService(dbBasePath string, pacing ReplyPacing, logger walog.Logger) *Service {
	return &Service{
		dbBasePath: dbBasePath,
		pacing:     pacing,
		log:        logger,
	}
}

func (s *Service) Initialize(ctx context.Context) error {
	// WAL persists on the file, so sharing the progress database is safe.
	dbAddress := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", s.dbBasePath)
	container, err := sqlstore.New(ctx, "sqlite", dbAddress, s.log.Sub("Database"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return fmt.Errorf("failed to get device: %w", err)
	}

	s.client = whatsmeow.NewClient(device, s.log.Sub("Client"))
	s.client.AddEventHandler(s.onEvent)
	return nil
}

func (s *Service) SetMessageHandler(handler MessageHandler) {
	s.handler = handler
}

func (s *Service) onEvent(evt interface{}) {
	v, ok := evt.(*events.Message)
	if !ok || s.handler == nil || v.Info.IsFromMe {
		return
	}

	text := ""
	if v.Message.GetConversation() != "" {
		text = v.Message.GetConversation()
	} else if ext := v.Message.GetExtendedTextMessage(); ext != nil {
		text = ext.GetText()
	}
	if text == "" {
		return
	}

	msg := IncomingMessage{
		Chat:     v.Info.Chat,
		SenderID: s.resolveSender(v.Info.Sender),
		PushName: v.Info.PushName,
		Text:     text,
		IsGroup:  v.Info.IsGroup,
	}
	go s.dispatch(context.Background(), msg)
}

func (s *Service) dispatch(ctx context.Context, msg IncomingMessage) {
	reply, err := s.handler(ctx, msg)
	if err != nil {
		s.log.Errorf("Error handling message from %s: %v", msg.SenderID, err)
		return
	}
	if reply == "" {
		return
	}
	if err := s.Reply(ctx, msg.Chat, reply); err != nil {
		s.log.Errorf("Failed to send response: %v", err)
	}
}

// resolveSender maps hidden-user (LID) senders to their phone number when
// the device store knows it, so one person always has one id.
func (s *Service) resolveSender(sender types.JID) string {
	if sender.Server != types.HiddenUserServer {
		return sender.User
	}
	pn, err := s.client.Store.LIDs.GetPNForLID(context.Background(), sender)
	if err != nil || pn.IsEmpty() {
		return sender.User
	}
	return pn.User
}

// Reply sends text to chat after the configured pacing delay.
func (s *Service) Reply(ctx context.Context, chat types.JID, text string) error {
	if delay := s.pacing.delay(); delay > 0 {
		if s.pacing.ShowTyping {
			_ = s.client.SendChatPresence(ctx, chat, types.ChatPresenceComposing, types.ChatPresenceMediaText)
		}
		s.log.Debugf("Delaying reply by %s", delay)
		time.Sleep(delay)
		if s.pacing.ShowTyping {
			_ = s.client.SendChatPresence(ctx, chat, types.ChatPresencePaused, types.ChatPresenceMediaText)
		}
	}

	_, err := s.client.SendMessage(ctx, chat, &waE2E.Message{Conversation: &text})
	return err
}

func (p ReplyPacing) delay() time.Duration {
	if p.MaxDelay > p.MinDelay {
		return p.MinDelay + time.Duration(rand.Int63n(int64(p.MaxDelay-p.MinDelay)+1))
	}
	return p.MinDelay
}

func (s *Service) Connect() error {
	if s.client == nil {
		return fmt.Errorf("client not initialized")
	}
	if s.client.IsConnected() {
		return nil
	}
	return s.client.Connect()
}

func (s *Service) Disconnect() {
	if s.client != nil {
		s.client.Disconnect()
	}
}

func (s *Service) IsLoggedIn() bool {
	return s.client.Store.ID != nil
}

func (s *Service) Pair(ctx context.Context, phone string) (string, error) {
	if s.IsLoggedIn() {
		return "", fmt.Errorf("already logged in")
	}
	if !s.client.IsConnected() {
		return "", fmt.Errorf("client not connected")
	}
	return s.client.PairPhone(ctx, phone, true, whatsmeow.PairClientChrome, "Chrome (Linux)")
}

// PrintQR connects and renders login QR codes until pairing finishes.
func (s *Service) PrintQR(ctx context.Context) error {
	if s.IsLoggedIn() {
		return nil
	}
	qrChan, err := s.client.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("failed to get QR channel: %w", err)
	}
	if err := s.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect for QR: %w", err)
	}
	for evt := range qrChan {
		if evt.Event == "code" {
			qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
		} else {
			s.log.Infof("Login event: %s", evt.Event)
		}
	}
	return nil
}
