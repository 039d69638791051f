package squad

import (
	"fmt"
	"log"

	teamFormation "teamforge/squad/team-formation"
	mailUtils "teamforge/utils/mail"

	mail "github.com/xhit/go-simple-mail/v2"
)

// notifyCommittedTeams avisa cada membro por e-mail depois do commit.
// Sem MAIL_HOST configurado a notificação é pulada.
func (s *Service) notifyCommittedTeams(teams []*teamFormation.Team) {
	client, err := mailUtils.GetNewSmtpClient()
	if err != nil {
		log.Printf("team notification skipped: %v", err)
		return
	}
	defer client.Close()

	for _, team := range teams {
		for _, member := range team.Members {
			if member.Email == "" {
				continue
			}

			body := fmt.Sprintf(
				"Hi %s,\n\nYou were assigned to %s as %s.\n\n%s\n",
				member.Name, team.Name, member.Role, team.Rationale,
			)
			msg := mailUtils.PrepareNewMail(member.Name, member.Email, "Your new team: "+team.Name, body, mail.TextPlain)
			if err := msg.Send(client); err != nil {
				log.Printf("could not notify %s: %v", member.Email, err)
			}
		}
	}
}
