package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type rulesTestSuite struct {
	suite.Suite
}

func (s *rulesTestSuite) TestPositiveNumber() {
	s.T().Log("positive values pass, zero and negatives are rejected")
	{
		s.Assert().Nil(PositiveNumber(10.5), "positive float must be valid")
		s.Assert().Nil(PositiveNumber(1), "positive int must be valid")
		s.Assert().NotNil(PositiveNumber(0), "zero must be rejected")
		s.Assert().NotNil(PositiveNumber(-3.2), "negative must be rejected")
	}

	s.T().Log("empty value is not a violation")
	{
		s.Assert().Nil(PositiveNumber(nil), "nil must be valid")
		s.Assert().Nil(PositiveNumber(""), "empty string must be valid")
	}

	s.T().Log("numeric strings are coerced")
	{
		s.Assert().Nil(PositiveNumber("500"), "numeric string must be valid")
		s.Assert().NotNil(PositiveNumber("-500"), "negative numeric string must be rejected")
		s.Assert().NotNil(PositiveNumber("not-a-number"), "garbage string must be rejected")
	}
}

func (s *rulesTestSuite) TestNonNegativeNumber() {
	s.Assert().Nil(NonNegativeNumber(0), "zero must be valid")
	s.Assert().Nil(NonNegativeNumber(42), "positive must be valid")
	s.Assert().NotNil(NonNegativeNumber(-1), "negative must be rejected")
	s.Assert().Nil(NonNegativeNumber(nil), "empty must be valid")
}

func (s *rulesTestSuite) TestFutureDate() {
	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)

	s.T().Log("today and later are allowed, time of day is ignored")
	{
		s.Assert().Nil(FutureDate(today), "today must be valid")
		s.Assert().Nil(FutureDate(tomorrow), "tomorrow must be valid")
		s.Assert().NotNil(FutureDate(yesterday), "yesterday must be rejected")
	}

	s.T().Log("unparseable value is not a violation")
	{
		s.Assert().Nil(FutureDate(""), "empty string must be valid")
		s.Assert().Nil(FutureDate("31/12/2020"), "unknown layout must be valid")
	}
}

func (s *rulesTestSuite) TestPastDate() {
	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)

	s.Assert().Nil(PastDate(today), "today must be valid")
	s.Assert().Nil(PastDate(yesterday), "yesterday must be valid")
	s.Assert().NotNil(PastDate(tomorrow), "tomorrow must be rejected")
}

func (s *rulesTestSuite) TestMinimumAge() {
	rule := MinimumAge(18)
	now := time.Now()

	s.T().Log("birthday today makes the age requirement met")
	{
		exactlyEighteen := now.AddDate(-18, 0, 0)
		s.Assert().Nil(rule(exactlyEighteen), "exactly 18 years must be valid")
	}

	s.T().Log("one day short of the birthday is still underage")
	{
		oneDayShort := now.AddDate(-18, 0, 1)
		fieldErr := rule(oneDayShort)
		s.Require().NotNil(fieldErr, "17 years and 364 days must be rejected")
		s.Assert().Equal("minimumAge", fieldErr.Rule)
		s.Assert().Equal(18, fieldErr.Context["requiredAge"])
		s.Assert().Equal(17, fieldErr.Context["actualAge"])
	}

	s.T().Log("well above the requirement")
	{
		s.Assert().Nil(rule(now.AddDate(-40, 0, 0)), "40 years must be valid")
	}
}

func (s *rulesTestSuite) TestDateComparison() {
	rule := DateComparison("startDate", "endDate")

	s.T().Log("end date equal to start date is a violation on the end field")
	{
		errs := FieldErrors{}
		fieldErr := rule(Form{"startDate": "2026-01-10", "endDate": "2026-01-10"}, errs)
		s.Require().NotNil(fieldErr, "equal dates must be rejected")
		s.Assert().Equal("dateComparison", fieldErr.Rule)
		s.Assert().Equal("End date must be after start date", fieldErr.Message)
		s.Assert().Same(fieldErr, errs["endDate"], "violation must be attached to end field")
	}

	s.T().Log("valid pair clears prior violations on both fields")
	{
		errs := FieldErrors{
			"startDate": {Rule: "dateComparison"},
			"endDate":   {Rule: "dateComparison"},
		}
		fieldErr := rule(Form{"startDate": "2026-01-10", "endDate": "2026-01-11"}, errs)
		s.Assert().Nil(fieldErr, "next day end date must be valid")
		s.Assert().Empty(errs, "prior violations must be cleared")
	}

	s.T().Log("missing either date skips the comparison")
	{
		errs := FieldErrors{"endDate": {Rule: "dateComparison"}}
		fieldErr := rule(Form{"startDate": "2026-01-10"}, errs)
		s.Assert().Nil(fieldErr, "incomplete pair must be valid")
		s.Assert().Len(errs, 1, "prior violations must stay untouched")
	}
}

func (s *rulesTestSuite) TestPhoneNumber() {
	s.Assert().Nil(PhoneNumber("9959075632"), "valid mobile number must pass")
	s.Assert().Nil(PhoneNumber("6000000000"), "number starting with 6 must pass")
	s.Assert().NotNil(PhoneNumber("5959075632"), "number starting with 5 must be rejected")
	s.Assert().NotNil(PhoneNumber("995907563"), "9-digit number must be rejected")
	s.Assert().NotNil(PhoneNumber("99590756321"), "11-digit number must be rejected")
	s.Assert().NotNil(PhoneNumber("99590 7563"), "number with space must be rejected")
	s.Assert().Nil(PhoneNumber(""), "empty must be valid")
}

func (s *rulesTestSuite) TestEmailDomain() {
	rule := EmailDomain([]string{"gmail.com", "test.com"})

	s.T().Log("domain is taken after the last @")
	{
		s.Assert().Nil(rule("john@gmail.com"), "allowed domain must pass")
		s.Assert().Nil(rule(`"odd@name"@test.com`), "domain after last @ must be matched")
		fieldErr := rule("john@yahoo.com")
		s.Require().NotNil(fieldErr, "domain outside the allowed set must be rejected")
		s.Assert().Equal("yahoo.com", fieldErr.Context["domain"])
	}

	s.T().Log("empty allowed set accepts any domain")
	{
		anyDomain := EmailDomain(nil)
		s.Assert().Nil(anyDomain("john@yahoo.com"), "any domain must pass")
	}
}

func (s *rulesTestSuite) TestAmountRange() {
	rule := AmountRange(100, 1000)

	s.T().Log("bounds are inclusive")
	{
		s.Assert().Nil(rule(100.0), "lower bound must be valid")
		s.Assert().Nil(rule(1000.0), "upper bound must be valid")
		s.Assert().Nil(rule(550.5), "value inside range must be valid")
	}

	s.T().Log("out of range carries bounds in the context")
	{
		fieldErr := rule(99.99)
		s.Require().NotNil(fieldErr, "value below range must be rejected")
		s.Assert().Equal("amountRange", fieldErr.Rule)
		s.Assert().Equal(100.0, fieldErr.Context["min"])
		s.Assert().Equal(1000.0, fieldErr.Context["max"])
		s.Assert().Equal(99.99, fieldErr.Context["actual"])

		s.Assert().NotNil(rule(1000.01), "value above range must be rejected")
	}
}

func (s *rulesTestSuite) TestPolicyName() {
	s.Assert().Nil(PolicyName("Term Life Insurance"), "letters and spaces must pass")
	s.Assert().Nil(PolicyName("Health-Plus_2 & Co"), "hyphen, underscore and ampersand must pass")
	s.Assert().NotNil(PolicyName("Life!"), "exclamation mark must be rejected")
	s.Assert().NotNil(PolicyName("Plan (basic)"), "parentheses must be rejected")
	s.Assert().Nil(PolicyName(""), "empty must be valid")
}

// start validation rules test suite
func TestRulesTestSuite(t *testing.T) {
	suite.Run(t, new(rulesTestSuite))
}
