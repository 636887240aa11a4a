package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/mailer"
)

// DispatchOutcome issue d'une tentative de remise
type DispatchOutcome string

const (
	OutcomeDelivered      DispatchOutcome = model.DeliveryDelivered
	OutcomeDeliveryFailed DispatchOutcome = model.DeliveryFailed
)

// ── ReportDispatcher ────────────────────────────────────────
//
// Notes de conception :
//   - Une seule tentative de remise par appel ; pas de relance automatique.
//     Un échec est terminal pour cette soumission — l'utilisateur peut
//     soumettre à nouveau, ce qui construit un compte rendu indépendant.
//   - L'échec de remise n'est jamais fatal pour l'appelant : le compte rendu
//     validé reste enregistré, l'issue est seulement remontée en avertissement.
//   - L'attente est bornée par le contexte ; l'expiration vaut échec de remise.
// ─────────────────────────────────────────────────────────────

// ReportDispatcher remise d'un compte rendu assemblé au canal de livraison
type ReportDispatcher interface {
	Dispatch(ctx context.Context, report *model.SessionReport) DispatchOutcome
}

type mailDispatcher struct {
	sender    mailer.Sender
	recipient string
	logger    *zap.Logger
}

// NewMailDispatcher crée le dispatcher adossé au canal SMTP.
// sender peut être nil (SMTP non configuré) : toute remise échoue alors
// proprement sans bloquer la validité des comptes rendus.
func NewMailDispatcher(sender mailer.Sender, recipient string, logger *zap.Logger) ReportDispatcher {
	return &mailDispatcher{sender: sender, recipient: recipient, logger: logger}
}

func (d *mailDispatcher) Dispatch(ctx context.Context, report *model.SessionReport) DispatchOutcome {
	if d.sender == nil || d.recipient == "" {
		d.logger.Warn("canal de remise non configuré, compte rendu non transmis",
			zap.String("reportID", report.ReportID))
		return OutcomeDeliveryFailed
	}

	subject := fmt.Sprintf("Compte rendu de séance — %s — %s",
		report.Teacher, report.SessionDate.Format("02/01/2006"))
	body := formatReportBody(report)

	done := make(chan error, 1)
	go func() {
		done <- d.sender.Send(d.recipient, subject, body)
	}()

	select {
	case <-ctx.Done():
		d.logger.Warn("remise du compte rendu expirée",
			zap.String("reportID", report.ReportID), zap.Error(ctx.Err()))
		return OutcomeDeliveryFailed
	case err := <-done:
		if err != nil {
			d.logger.Warn("remise du compte rendu échouée",
				zap.String("reportID", report.ReportID), zap.Error(err))
			return OutcomeDeliveryFailed
		}
	}

	return OutcomeDelivered
}

// formatReportBody corps texte brut, ordre des champs fixe :
// en-tête, enseignant, enseignement, promotion/groupe/sous-groupe, unité,
// date, nombre d'absents + noms, observations, signataire.
func formatReportBody(r *model.SessionReport) string {
	var b strings.Builder
	b.WriteString("COMPTE RENDU DE SÉANCE\n")
	b.WriteString("======================\n\n")
	fmt.Fprintf(&b, "Enseignant : %s\n", r.Teacher)
	fmt.Fprintf(&b, "Enseignement : %s\n", r.Subject)
	fmt.Fprintf(&b, "Promotion : %s — Groupe : %s — Sous-groupe : %s\n", r.Promotion, r.Group, r.Subgroup)
	fmt.Fprintf(&b, "Unité : %s %s\n", unitTypeLabel(r.UnitType), r.UnitNumber)
	fmt.Fprintf(&b, "Date de la séance : %s\n", r.SessionDate.Format("02/01/2006"))
	if len(r.Absentees) == 0 {
		b.WriteString("Absents (0) : aucun\n")
	} else {
		fmt.Fprintf(&b, "Absents (%d) : %s\n", len(r.Absentees), strings.Join(r.Absentees, ", "))
	}
	fmt.Fprintf(&b, "\nObservations :\n%s\n", r.Observations)
	fmt.Fprintf(&b, "\nSigné par : %s\n", r.SignerName)
	return b.String()
}

func unitTypeLabel(unitType string) string {
	switch unitType {
	case model.UnitChapitre:
		return "Chapitre"
	case model.UnitTPNumero:
		return "TP n°"
	case model.UnitTDSerie:
		return "Série de TD"
	default:
		return "Autre"
	}
}
