package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/paybook/internal/config"
	"github.com/dmitrijs2005/paybook/internal/logging"
	"github.com/dmitrijs2005/paybook/internal/models"
	"github.com/dmitrijs2005/paybook/internal/repositories/kv"
	"github.com/dmitrijs2005/paybook/internal/services"
	"github.com/dmitrijs2005/paybook/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()
	repo := kv.NewMemory()
	log := logging.Discard()

	records, err := services.NewRecordStore(ctx, repo, log)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &App{
		config:   &config.Config{ExportDir: t.TempDir()},
		accounts: services.NewAccountDirectory(repo, session.NewManager([]byte("k"), time.Hour), log),
		records:  records,
		log:      log,
		reader:   rdr(""),
		out:      out,
		now:      func() time.Time { return testNow },
	}, out
}

func (a *App) feed(input string) {
	a.reader = bufio.NewReader(strings.NewReader(input))
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func loggedIn(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	a, out := newTestApp(t)
	_, err := a.accounts.Register(context.Background(), "alice", []byte("pw"), models.RoleAdmin)
	require.NoError(t, err)
	return a, out
}

func addRecord(t *testing.T, a *App, name, position, month, base, bonus string) models.EmployeeRecord {
	t.Helper()
	rec, err := a.records.Add(context.Background(), models.EmployeeInput{
		Name: name, Position: position, Month: month,
		BaseSalary: decimal.RequireFromString(base), Bonus: decimal.RequireFromString(bonus),
	})
	require.NoError(t, err)
	return rec
}

func TestRegisterLoginLogout(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)
	stubPassword(t, "secret")

	a.feed("alice\nadmin\n")
	require.NoError(t, a.Register(ctx, nil))
	assert.Contains(t, out.String(), "Registered and logged in as alice (admin)")
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(alice) ", a.getStatus())

	require.NoError(t, a.Logout(ctx, nil))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())

	a.feed("alice\n")
	require.NoError(t, a.Login(ctx, nil))
	assert.Contains(t, out.String(), "Welcome, alice")

	out.Reset()
	require.NoError(t, a.WhoAmI(ctx, nil))
	assert.Equal(t, "alice (admin)\n", out.String())
}

func TestRegister_BadRole(t *testing.T) {
	a, _ := newTestApp(t)
	stubPassword(t, "secret")

	a.feed("bob\nroot\n")
	err := a.Register(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, userMessage(err), "role must be admin or user")
	assert.False(t, a.isLoggedIn())
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	a, _ := loggedIn(t)
	require.NoError(t, a.Logout(ctx, nil))
	stubPassword(t, "nope")

	a.feed("alice\n")
	err := a.Login(ctx, nil)
	require.Error(t, err)
	assert.Equal(t, "invalid username or password", userMessage(err))
	assert.False(t, a.isLoggedIn())
}

func TestWhoAmI_LoggedOut(t *testing.T) {
	a, out := newTestApp(t)
	require.NoError(t, a.WhoAmI(context.Background(), nil))
	assert.Equal(t, "Not logged in\n", out.String())
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	a, out := loggedIn(t)

	// month and bonus take their defaults
	a.feed("Alice\nEngineer\n\n10000\n\n")
	require.NoError(t, a.Add(ctx, nil))

	all := a.records.List(ctx, models.Filter{})
	require.Len(t, all, 1)
	rec := all[0]
	assert.Equal(t, "2024-03", rec.Month)
	assert.True(t, rec.Bonus.IsZero())
	assert.True(t, decimal.NewFromInt(290).Equal(rec.Tax))
	assert.Contains(t, out.String(), "net salary 8660.00")
}

func TestAdd_ValidationError(t *testing.T) {
	ctx := context.Background()
	a, _ := loggedIn(t)

	a.feed("A\nEngineer\n2024-3\n10\n0\n")
	err := a.Add(ctx, nil)
	require.Error(t, err)
	assert.Equal(t, "invalid input: month must be a period in YYYY-MM format; name must be 2-50 characters", userMessage(err))
	assert.Empty(t, a.records.List(ctx, models.Filter{}))
}

func TestEdit_KeepsDefaults(t *testing.T) {
	ctx := context.Background()
	a, _ := loggedIn(t)
	rec := addRecord(t, a, "Alice", "Engineer", "2024-01", "10000", "500")

	a.feed("\nLead\n\n12000\n\n")
	require.NoError(t, a.Edit(ctx, []string{rec.ID}))

	got, err := a.records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "Lead", got.Position)
	assert.Equal(t, "2024-01", got.Month)
	assert.True(t, decimal.NewFromInt(12000).Equal(got.BaseSalary))
	assert.True(t, decimal.NewFromInt(500).Equal(got.Bonus))
}

func TestEdit_UnknownID(t *testing.T) {
	a, _ := loggedIn(t)

	err := a.Edit(context.Background(), []string{"missing"})
	require.Error(t, err)
	assert.Equal(t, "no such record", userMessage(err))
}

func TestPay(t *testing.T) {
	ctx := context.Background()
	a, out := loggedIn(t)
	rec := addRecord(t, a, "Alice", "Engineer", "2024-01", "10000", "0")

	a.feed("n\n")
	require.NoError(t, a.Pay(ctx, []string{rec.ID}))
	got, _ := a.records.Get(ctx, rec.ID)
	assert.Equal(t, models.StatusPending, got.Status)

	a.feed("y\n")
	require.NoError(t, a.Pay(ctx, []string{rec.ID}))
	got, _ = a.records.Get(ctx, rec.ID)
	assert.Equal(t, models.StatusPaid, got.Status)

	out.Reset()
	require.NoError(t, a.Pay(ctx, []string{rec.ID}))
	assert.Equal(t, "Alice is already paid\n", out.String())
}

func TestPay_PromptsForID(t *testing.T) {
	ctx := context.Background()
	a, _ := loggedIn(t)
	rec := addRecord(t, a, "Alice", "Engineer", "2024-01", "10000", "0")

	a.feed(rec.ID + "\ny\n")
	require.NoError(t, a.Pay(ctx, nil))
	got, _ := a.records.Get(ctx, rec.ID)
	assert.Equal(t, models.StatusPaid, got.Status)

	a.feed("\n")
	require.ErrorIs(t, a.Pay(ctx, nil), errNoID)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	a, _ := loggedIn(t)
	rec := addRecord(t, a, "Alice", "Engineer", "2024-01", "10000", "0")

	a.feed("no\n")
	require.NoError(t, a.Delete(ctx, []string{rec.ID}))
	assert.Len(t, a.records.List(ctx, models.Filter{}), 1)

	a.feed("yes\n")
	require.NoError(t, a.Delete(ctx, []string{rec.ID}))
	assert.Empty(t, a.records.List(ctx, models.Filter{}))
}

func TestList_Filters(t *testing.T) {
	ctx := context.Background()
	a, out := loggedIn(t)
	addRecord(t, a, "Alice", "Engineer", "2024-01", "10000", "0")
	addRecord(t, a, "Bob", "Designer", "2024-02", "8000", "0")

	a.feed("\nDesigner\n\n\n")
	require.NoError(t, a.List(ctx, nil))

	s := out.String()
	assert.Contains(t, s, "Position [Designer, Engineer]")
	assert.Contains(t, s, "EMPLOYEES (1)")
	assert.Contains(t, s, "Bob")
	assert.NotContains(t, s, "Alice ")

	out.Reset()
	a.feed("zed\n\n\n\n")
	require.NoError(t, a.List(ctx, nil))
	assert.Contains(t, out.String(), "No records found.")
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	a, out := loggedIn(t)
	paid := addRecord(t, a, "Alice", "Engineer", "2024-02", "100", "0")
	addRecord(t, a, "Bob", "Engineer", "2024-01", "50", "0")
	addRecord(t, a, "Carol", "Designer", "2024-01", "70", "0")
	_, err := a.records.SetStatus(ctx, paid.ID, models.StatusPaid)
	require.NoError(t, err)

	require.NoError(t, a.Report(ctx, nil))

	s := out.String()
	// 10.5% insurance is withheld from every base salary.
	assert.Contains(t, s, "Total net salary")
	assert.Contains(t, s, "196.90")
	assert.Regexp(t, `Pending\s+2`, s)
	assert.Regexp(t, `Paid\s+1`, s)
	assert.Less(t, strings.Index(s, "2024-01"), strings.Index(s, "2024-02"))
	assert.Regexp(t, `2024-01\s+2\s+107\.40`, s)
	assert.Regexp(t, `Engineer\s+2\s+134\.25`, s)
}

func TestReport_Empty(t *testing.T) {
	a, out := loggedIn(t)

	require.NoError(t, a.Report(context.Background(), nil))
	assert.Regexp(t, `Average\s+0\.00`, out.String())
	assert.Contains(t, out.String(), "No data.")
}

func TestMonthsAndPositions(t *testing.T) {
	ctx := context.Background()
	a, out := loggedIn(t)
	addRecord(t, a, "Alice", "Engineer", "2024-02", "100", "0")

	require.NoError(t, a.Months(ctx, nil))
	require.NoError(t, a.Positions(ctx, nil))
	assert.Contains(t, out.String(), "NET SALARY BY MONTH")
	assert.Contains(t, out.String(), "NET SALARY BY POSITION")
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	a, out := loggedIn(t)
	addRecord(t, a, "Alice", "Engineer", "2024-02", "100", "0")

	require.NoError(t, a.Export(ctx, []string{"csv"}))

	path := filepath.Join(a.config.ExportDir, "salary-report_2024-03-15.csv")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alice,Engineer,100.00,0.00,10.50,0.00,89.50")
	assert.Contains(t, out.String(), "Exported 1 records to "+path)

	require.NoError(t, a.Export(ctx, nil))
	_, err = os.Stat(filepath.Join(a.config.ExportDir, "salary-report_2024-03-15.xlsx"))
	require.NoError(t, err)

	require.Error(t, a.Export(ctx, []string{"docx"}))
}

func TestNewApp_RestoresSession(t *testing.T) {
	capturePrints(t)
	ctx := context.Background()
	cfg := &config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "paybook.db"),
		ExportDir:    t.TempDir(),
		SessionTTL:   time.Hour,
	}

	first, err := NewApp(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	_, err = first.accounts.Register(ctx, "alice", []byte("pw"), "")
	require.NoError(t, err)
	addRecord(t, first, "Alice", "Engineer", "2024-02", "100", "0")
	require.NoError(t, first.Close())

	second, err := NewApp(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	defer second.Close()

	var out bytes.Buffer
	second.out = &out
	second.feed("exit\n")
	second.Run(ctx)

	assert.Contains(t, out.String(), "Welcome back, alice")
	assert.True(t, second.isLoggedIn())
	assert.Len(t, second.records.List(ctx, models.Filter{}), 1)
}
