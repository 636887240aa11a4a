package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
)

func testReport() *model.SessionReport {
	return &model.SessionReport{
		ReportID:         "rpt-1",
		Teacher:          "Benali A.",
		Subject:          "TD Électronique Fondamentale",
		Promotion:        "L2 ELT",
		Group:            "G1",
		Subgroup:         "A",
		UnitType:         model.UnitTDSerie,
		UnitNumber:       "3",
		SessionDate:      time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Absentees:        model.StringArray{"Zed Karim"},
		Observations:     "Série 3 terminée",
		SignerName:       "Benali A.",
		VerificationCode: "VC-1234",
	}
}

func TestDispatch_RemiseReussie(t *testing.T) {
	sender := &fakeSender{}
	d := NewMailDispatcher(sender, "chef@univ.dz", zap.NewNop())

	outcome := d.Dispatch(context.Background(), testReport())

	if outcome != OutcomeDelivered {
		t.Fatalf("issue attendue delivered, obtenu %s", outcome)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("un envoi attendu, obtenu %d", len(sender.sent))
	}
	mail := sender.sent[0]
	if mail.to != "chef@univ.dz" {
		t.Errorf("destinataire attendu chef@univ.dz, obtenu %s", mail.to)
	}
	if !strings.Contains(mail.subject, "Benali A.") || !strings.Contains(mail.subject, "12/01/2026") {
		t.Errorf("objet inattendu: %q", mail.subject)
	}
}

// L'ordre des champs du corps est fixe : enseignant, enseignement,
// promotion, unité, date, absents, observations, signataire.
func TestDispatch_OrdreDesChamps(t *testing.T) {
	sender := &fakeSender{}
	d := NewMailDispatcher(sender, "chef@univ.dz", zap.NewNop())

	d.Dispatch(context.Background(), testReport())

	body := sender.sent[0].body
	fields := []string{
		"Enseignant : Benali A.",
		"Enseignement : TD Électronique Fondamentale",
		"Promotion : L2 ELT — Groupe : G1 — Sous-groupe : A",
		"Unité : Série de TD 3",
		"Date de la séance : 12/01/2026",
		"Absents (1) : Zed Karim",
		"Observations :",
		"Signé par : Benali A.",
	}
	pos := -1
	for _, f := range fields {
		idx := strings.Index(body, f)
		if idx < 0 {
			t.Fatalf("champ absent du corps: %q\ncorps:\n%s", f, body)
		}
		if idx < pos {
			t.Errorf("champ %q hors de l'ordre attendu", f)
		}
		pos = idx
	}
}

func TestDispatch_AucunAbsent(t *testing.T) {
	sender := &fakeSender{}
	d := NewMailDispatcher(sender, "chef@univ.dz", zap.NewNop())

	report := testReport()
	report.Absentees = model.StringArray{}
	d.Dispatch(context.Background(), report)

	if !strings.Contains(sender.sent[0].body, "Absents (0) : aucun") {
		t.Errorf("ligne d'absents vide attendue, corps:\n%s", sender.sent[0].body)
	}
}

func TestDispatch_CanalNonConfigure(t *testing.T) {
	d := NewMailDispatcher(nil, "chef@univ.dz", zap.NewNop())

	if outcome := d.Dispatch(context.Background(), testReport()); outcome != OutcomeDeliveryFailed {
		t.Errorf("sans canal SMTP, issue attendue failed, obtenu %s", outcome)
	}
}

func TestDispatch_DestinataireManquant(t *testing.T) {
	d := NewMailDispatcher(&fakeSender{}, "", zap.NewNop())

	if outcome := d.Dispatch(context.Background(), testReport()); outcome != OutcomeDeliveryFailed {
		t.Errorf("sans destinataire, issue attendue failed, obtenu %s", outcome)
	}
}

func TestDispatch_ErreurEnvoi(t *testing.T) {
	sender := &fakeSender{err: errors.New("connexion refusée")}
	d := NewMailDispatcher(sender, "chef@univ.dz", zap.NewNop())

	if outcome := d.Dispatch(context.Background(), testReport()); outcome != OutcomeDeliveryFailed {
		t.Errorf("erreur d'envoi : issue attendue failed, obtenu %s", outcome)
	}
}

func TestDispatch_ExpirationDuContexte(t *testing.T) {
	sender := &fakeSender{delay: 200 * time.Millisecond}
	d := NewMailDispatcher(sender, "chef@univ.dz", zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if outcome := d.Dispatch(ctx, testReport()); outcome != OutcomeDeliveryFailed {
		t.Errorf("expiration : issue attendue failed, obtenu %s", outcome)
	}
}
