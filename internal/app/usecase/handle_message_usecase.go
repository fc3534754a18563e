package usecase

import (
	"context"
	"strings"
)

type challengeCompleter interface {
	Execute(ctx context.Context, challengeID string) (string, error)
}

type challengeLister interface {
	Execute(ctx context.Context, category string) (string, error)
}

type userRenamer interface {
	Execute(ctx context.Context, newName string) (string, error)
}

type reporter interface {
	Execute(ctx context.Context) (string, error)
}

const helpText = `🌱 *GreenCity Challenge*
#today - points and today's featured challenges
#challenges [category] - list eco challenges
#done <challenge-id> - complete a challenge
#profile - your points and history
#badges - earned and next badges
#name <new name> - change your display name
#save - retry saving your progress
#help - this message`

type HandleMessageUsecase struct {
	complete challengeCompleter
	list     challengeLister
	rename   userRenamer
	profile  reporter
	badges   reporter
	save     reporter
	home     reporter
}

func NewHandleMessageUsecase(complete challengeCompleter, list challengeLister, rename userRenamer, profile, badges, save, home reporter) *HandleMessageUsecase {
	return &HandleMessageUsecase{
		complete: complete,
		list:     list,
		rename:   rename,
		profile:  profile,
		badges:   badges,
		save:     save,
		home:     home,
	}
}

// Execute routes a chat message to its command. Non-command text gets no reply.
func (uc *HandleMessageUsecase) Execute(ctx context.Context, msg string) (string, error) {
	msg = strings.TrimSpace(msg)
	if !strings.HasPrefix(msg, "#") {
		return "", nil
	}

	command, args, _ := strings.Cut(msg, " ")
	args = strings.TrimSpace(args)

	switch strings.ToLower(command) {
	case "#challenges", "#tantangan":
		return uc.list.Execute(ctx, args)
	case "#done", "#selesai":
		return uc.complete.Execute(ctx, args)
	case "#name":
		return uc.rename.Execute(ctx, args)
	case "#profile":
		return uc.profile.Execute(ctx)
	case "#badges":
		return uc.badges.Execute(ctx)
	case "#save":
		return uc.save.Execute(ctx)
	case "#today", "#home":
		return uc.home.Execute(ctx)
	case "#help":
		return helpText, nil
	}
	return "", nil
}
