package service

import (
	"fmt"
	"strings"

	"chatcore/internal/common"
	"chatcore/internal/dbmysql"
)

// ResolveTitle computes the display title of a conversation for one viewer.
// Precedence: explicit group title, then the viewer's custom title, then a
// default derived from the other participants' names.
func ResolveTitle(current *dbmysql.Participant, participants []*dbmysql.Participant, customGroupTitle *string) string {
	if customGroupTitle != nil && *customGroupTitle != "" {
		return *customGroupTitle
	}
	if current != nil && current.CustomTitle != nil && *current.CustomTitle != "" {
		return *current.CustomTitle
	}

	others := othersOf(current, participants)
	switch {
	case len(others) == 0:
		return "You"
	case len(others) == 1:
		return others[0].Name
	}

	names := make([]string, 0, 3)
	for i := 0; i < len(others) && i < 3; i++ {
		names = append(names, others[i].Name)
	}
	title := strings.Join(names, ", ")
	if len(others) > 3 {
		title += "..."
	}
	return title
}

// ResolveAvatars returns the avatar set shown for a conversation: empty when
// a custom group avatar is set (the client uses that), otherwise the avatars
// of up to two other participants in list order.
func ResolveAvatars(current *dbmysql.Participant, participants []*dbmysql.Participant, customGroupAvatar *string) []string {
	if customGroupAvatar != nil && *customGroupAvatar != "" {
		return []string{}
	}

	others := othersOf(current, participants)
	avatars := make([]string, 0, 2)
	for i := 0; i < len(others) && i < 2; i++ {
		avatars = append(avatars, others[i].Avatar)
	}
	return avatars
}

func othersOf(current *dbmysql.Participant, participants []*dbmysql.Participant) []*dbmysql.Participant {
	others := make([]*dbmysql.Participant, 0, len(participants))
	for _, p := range participants {
		if current != nil && p.UserID == current.UserID {
			continue
		}
		others = append(others, p)
	}
	return others
}

// GuessConversationType infers the conversation type from the distinct
// participant ids: exactly 2 is private, 3 to 100 is a group.
func GuessConversationType(userIDs []string) (dbmysql.ConversationType, error) {
	seen := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		seen[id] = struct{}{}
	}

	switch n := len(seen); {
	case n == dbmysql.PrivateParticipants:
		return dbmysql.ConversationTypePrivate, nil
	case n >= dbmysql.MinGroupParticipants && n <= dbmysql.MaxGroupParticipants:
		return dbmysql.ConversationTypeGroup, nil
	default:
		return "", fmt.Errorf("%w: cannot infer conversation type from %d participants", common.ErrValidation, n)
	}
}
