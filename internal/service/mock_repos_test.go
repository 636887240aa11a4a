package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/catalog"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
)

// ── Mock TeacherAccountRepository ──

type mockAccountRepo struct {
	accounts map[string]*model.TeacherAccount // clé : account_id
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[string]*model.TeacherAccount)}
}

func (m *mockAccountRepo) add(account *model.TeacherAccount) *model.TeacherAccount {
	if account.AccountID == "" {
		account.AccountID = fmt.Sprintf("acct-%d", len(m.accounts)+1)
	}
	m.accounts[account.AccountID] = account
	return account
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (*model.TeacherAccount, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) GetByID(_ context.Context, id string) (*model.TeacherAccount, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) GetByNomOfficiel(_ context.Context, nom string) (*model.TeacherAccount, error) {
	for _, a := range m.accounts {
		if a.NomOfficiel == nom {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) List(_ context.Context) ([]model.TeacherAccount, error) {
	var result []model.TeacherAccount
	for _, a := range m.accounts {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].NomOfficiel < result[j].NomOfficiel })
	return result, nil
}

func (m *mockAccountRepo) SetReducedLoad(_ context.Context, id string, reduced bool) error {
	if a, ok := m.accounts[id]; ok {
		a.ReducedLoad = reduced
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── Mock SessionReportRepository ──

type mockReportRepo struct {
	reports   []model.SessionReport
	idCounter int
	createErr error // simule une panne d'archivage
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{}
}

func (m *mockReportRepo) Create(_ context.Context, report *model.SessionReport) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.idCounter++
	if report.ReportID == "" {
		report.ReportID = fmt.Sprintf("rpt-%d", m.idCounter)
	}
	m.reports = append(m.reports, *report)
	return nil
}

func (m *mockReportRepo) SetDeliveryStatus(_ context.Context, reportID, status string, deliveredAt *time.Time) error {
	for i := range m.reports {
		if m.reports[i].ReportID == reportID {
			m.reports[i].DeliveryStatus = status
			m.reports[i].DeliveredAt = deliveredAt
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockReportRepo) ListByAccount(_ context.Context, accountID string) ([]model.SessionReport, error) {
	var result []model.SessionReport
	// created_at DESC : le plus récent d'abord
	for i := len(m.reports) - 1; i >= 0; i-- {
		if m.reports[i].AccountID == accountID {
			result = append(result, m.reports[i])
		}
	}
	return result, nil
}

// ── Faux dispatcher et faux canal SMTP ──

type fakeDispatcher struct {
	outcome    DispatchOutcome
	lastReport *model.SessionReport
	calls      int
}

func (d *fakeDispatcher) Dispatch(_ context.Context, report *model.SessionReport) DispatchOutcome {
	d.calls++
	d.lastReport = report
	return d.outcome
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeSender struct {
	err   error
	delay time.Duration
	sent  []sentMail
}

func (s *fakeSender) Send(to, subject, body string) error {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// ── Jeux d'essai partagés ──

// EDT de test : Benali occupe deux créneaux hebdomadaires ; le créneau de TD
// apparaît deux fois dans la source (une ligne par sous-groupe inscrit).
func testTimetableRows() []catalog.TimetableEntry {
	return []catalog.TimetableEntry{
		{Teacher: "Benali A.", Subject: "Cours Électronique Fondamentale", Promotion: "L2 ELT",
			Day: "Dimanche", Timeslot: "8h-9h30", Location: "Amphi A"},
		{Teacher: "Benali A.", Subject: "TD Électronique Fondamentale", Promotion: "L2 ELT",
			Day: "Lundi", Timeslot: "9h30-11h", Location: "Salle 3"},
		{Teacher: "Benali A.", Subject: "TD Électronique Fondamentale", Promotion: "L2 ELT",
			Day: "Lundi", Timeslot: "9h30-11h", Location: "Salle 3"},
		{Teacher: "Cherif M.", Subject: "TP Mesures Électriques", Promotion: "L3 ELT",
			Day: "Jeudi", Timeslot: "14h-15h30", Location: "Labo 2"},
	}
}

func testRosterRows() []catalog.RosterEntry {
	return []catalog.RosterEntry{
		{StudentName: "Zed Karim", Promotion: "L2 ELT", Group: "G1", Subgroup: "A"},
		{StudentName: "Sari Amel", Promotion: "L2 ELT", Group: "G1", Subgroup: "A"},
		{StudentName: "Mansouri Yacine", Promotion: "L2 ELT", Group: "G1", Subgroup: "B"},
	}
}

func newTestEDT() *catalog.TimetableIndex {
	return catalog.NewTimetableIndex(testTimetableRows())
}

func newTestRoster() *catalog.RosterIndex {
	return catalog.NewRosterIndex(testRosterRows())
}
