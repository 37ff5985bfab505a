package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdList                 CommandType = "list"
	CmdMake                 CommandType = "make"
	CmdMakeForOther         CommandType = "make-for-other"
	CmdDelete               CommandType = "delete"
	CmdDeleteByID           CommandType = "delete-by-id"
	CmdDeleteAll            CommandType = "delete-all"
	CmdMakeAdmin            CommandType = "make-admin"
	CmdRemoveAdmin          CommandType = "remove-admin"
	CmdListAdmins           CommandType = "list-admins"
	CmdAddKnown             CommandType = "add-known"
	CmdListKnown            CommandType = "list-known"
	CmdAddExpected          CommandType = "add-expected"
	CmdListExpected         CommandType = "list-expected"
	CmdScheduleAnnouncement CommandType = "schedule-announcement"
	CmdListAnnouncements    CommandType = "list-announcements"
	CmdDeleteAnnouncement   CommandType = "delete-announcement"
	CmdHelp                 CommandType = "help"
	CmdAdminHelp            CommandType = "admin-help"
	CmdKill                 CommandType = "kill"
	CmdReload               CommandType = "reload"
)

var verbs = map[string]CommandType{
	"list":                  CmdList,
	"make":                  CmdMake,
	"make-for-other":        CmdMakeForOther,
	"delete":                CmdDelete,
	"delete-by-id":          CmdDeleteByID,
	"delete-all":            CmdDeleteAll,
	"make-admin":            CmdMakeAdmin,
	"remove-admin":          CmdRemoveAdmin,
	"list-admins":           CmdListAdmins,
	"add-known":             CmdAddKnown,
	"list-known":            CmdListKnown,
	"add-expected":          CmdAddExpected,
	"list-expected":         CmdListExpected,
	"schedule-announcement": CmdScheduleAnnouncement,
	"list-announcements":    CmdListAnnouncements,
	"delete-announcement":   CmdDeleteAnnouncement,
	"help":                  CmdHelp,
	"admin-help":            CmdAdminHelp,
	"kill":                  CmdKill,
	"reload":                CmdReload,
}

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand parses the message remainder after the command prefix. The
// grammar is `verb` or `verb: arg; arg; ...`; arguments are trimmed of
// surrounding whitespace. A trailing colon with no arguments is accepted.
func ParseCommand(text string) (*Command, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &Command{Type: CmdHelp, Raw: text}, nil
	}

	verb, argPart, hasArgs := strings.Cut(trimmed, ":")
	verb = strings.TrimSpace(verb)

	cmdType, ok := verbs[verb]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", verb)
	}

	cmd := &Command{
		Type: cmdType,
		Raw:  text,
	}

	if hasArgs {
		argPart = strings.TrimSpace(argPart)
		if argPart != "" {
			for _, arg := range strings.Split(argPart, ";") {
				cmd.Args = append(cmd.Args, strings.TrimSpace(arg))
			}
		}
	}

	return cmd, nil
}

func GetHelpText(prefix string) string {
	return fmt.Sprintf(`Usage:
%[1]s list -- list upcoming reservations
%[1]s make: <date>; <type> -- make a reservation (date format %s)
%[1]s delete: <date>; <type> -- delete a reservation
%[1]s list-known -- list recognized reservation types
%[1]s list-expected -- list types announcements ask volunteers for
%[1]s list-admins -- list admin usernames, contact them if you need an admin
%[1]s admin-help -- display admin commands`, prefix, "YYYY-MM-DD")
}

func GetAdminHelpText(prefix string) string {
	return fmt.Sprintf(`WARNING: These commands run without asking for confirmation, be careful!
Admin usage:
%[1]s make-for-other: <date>; <username>; <type> -- make a reservation for someone else
%[1]s delete-by-id: <id> -- delete a reservation by id
%[1]s delete-all -- delete all reservations
%[1]s make-admin: <username> -- make a user an admin
%[1]s remove-admin: <username> -- revoke admin privileges (no guard: removing the last admin locks every admin command until the bootstrap admin is re-seeded)
%[1]s add-known: <type>
%[1]s add-expected: <type>; <message if none>
%[1]s schedule-announcement: <cron>; <text>; <include schedule t/f>; <request volunteers t/f>
%[1]s list-announcements
%[1]s delete-announcement: <id> -- delete a recurring announcement and cancel its trigger
%[1]s reload -- re-seed the bootstrap admin and re-sync announcement schedules
%[1]s kill -- shut down the bot`, prefix)
}
