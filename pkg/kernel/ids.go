package kernel

type VacancyID int64

func NewVacancyID(id int64) VacancyID { return VacancyID(id) }
func (v VacancyID) Int64() int64      { return int64(v) }
func (v VacancyID) IsZero() bool      { return int64(v) == 0 }

type CategoryID int64

func NewCategoryID(id int64) CategoryID { return CategoryID(id) }
func (c CategoryID) Int64() int64       { return int64(c) }
func (c CategoryID) IsZero() bool       { return int64(c) == 0 }

type ApplicantID int64

func NewApplicantID(id int64) ApplicantID { return ApplicantID(id) }
func (a ApplicantID) Int64() int64        { return int64(a) }
func (a ApplicantID) IsZero() bool        { return int64(a) == 0 }

type UserID int64

func NewUserID(id int64) UserID { return UserID(id) }
func (u UserID) Int64() int64   { return int64(u) }
func (u UserID) IsZero() bool   { return int64(u) == 0 }

type RoleID int64

func NewRoleID(id int64) RoleID { return RoleID(id) }
func (r RoleID) Int64() int64   { return int64(r) }
func (r RoleID) IsZero() bool   { return int64(r) == 0 }

type QuestionID int64

func NewQuestionID(id int64) QuestionID { return QuestionID(id) }
func (q QuestionID) Int64() int64       { return int64(q) }
func (q QuestionID) IsZero() bool       { return int64(q) == 0 }

type AnswerOptionID int64

func NewAnswerOptionID(id int64) AnswerOptionID { return AnswerOptionID(id) }
func (a AnswerOptionID) Int64() int64           { return int64(a) }
func (a AnswerOptionID) IsZero() bool           { return int64(a) == 0 }

type VacancyQuestionID int64

func NewVacancyQuestionID(id int64) VacancyQuestionID { return VacancyQuestionID(id) }
func (v VacancyQuestionID) Int64() int64              { return int64(v) }
func (v VacancyQuestionID) IsZero() bool              { return int64(v) == 0 }

type UserRoleID int64

func NewUserRoleID(id int64) UserRoleID { return UserRoleID(id) }
func (u UserRoleID) Int64() int64       { return int64(u) }
func (u UserRoleID) IsZero() bool       { return int64(u) == 0 }

type TestAnswerID int64

func NewTestAnswerID(id int64) TestAnswerID { return TestAnswerID(id) }
func (t TestAnswerID) Int64() int64         { return int64(t) }
func (t TestAnswerID) IsZero() bool         { return int64(t) == 0 }
