// Package courses provides static course recommendations keyed by resume
// category.
package courses

import (
	"math/rand"
)

// Course is a recommended course with a link to its page.
type Course struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

var dsCourses = []Course{
	{"Machine Learning Crash Course by Google", "https://developers.google.com/machine-learning/crash-course"},
	{"Machine Learning A-Z by Udemy", "https://www.udemy.com/course/machinelearning/"},
	{"Machine Learning by Andrew NG", "https://www.coursera.org/learn/machine-learning"},
	{"Data Scientist Master Program of Simplilearn", "https://www.simplilearn.com/big-data-and-analytics/senior-data-scientist-masters-program-training"},
	{"Data Science Foundations: Fundamentals by LinkedIn", "https://www.linkedin.com/learning/data-science-foundations-fundamentals-5"},
	{"Data Scientist with Python", "https://www.datacamp.com/tracks/data-scientist-with-python"},
	{"Programming for Data Science with Python", "https://www.udacity.com/course/programming-for-data-science-nanodegree--nd104"},
	{"Introduction to Data Science", "https://www.udacity.com/course/introduction-to-data-science--cd0017"},
}

var webCourses = []Course{
	{"Django Crash Course", "https://www.udemy.com/course/django-crash-course/"},
	{"Python and Django Full Stack Web Developer Bootcamp", "https://www.udemy.com/course/python-and-django-full-stack-web-developer-bootcamp/"},
	{"React Crash Course", "https://www.youtube.com/watch?v=Dorf8i6lCuk"},
	{"ReactJS Project Development Training", "https://www.dotnettricks.com/training/masters-program/reactjs-certification-training"},
	{"Full Stack Web Developer by Udacity", "https://www.udacity.com/course/full-stack-web-developer-nanodegree--nd0044"},
	{"Front End Web Developer by Udacity", "https://www.udacity.com/course/front-end-web-developer-nanodegree--nd0011"},
	{"Become a React Developer by Udacity", "https://www.udacity.com/course/react-nanodegree--nd019"},
}

var androidCourses = []Course{
	{"Android Development for Beginners", "https://www.udemy.com/course/android-development-for-beginners/"},
	{"Android App Development Specialization", "https://www.coursera.org/specializations/android-app-development"},
	{"Associate Android Developer Certification", "https://grow.google/androiddev/#?modal_active=none"},
	{"Become an Android Kotlin Developer by Udacity", "https://www.udacity.com/course/android-kotlin-developer-nanodegree--nd940"},
	{"Android Basics by Google", "https://www.udacity.com/course/android-basics-nanodegree-by-google--nd803"},
	{"The Complete Android Developer Course", "https://www.udemy.com/course/complete-android-n-developer-course/"},
}

var iosCourses = []Course{
	{"IOS App Development by LinkedIn", "https://www.linkedin.com/learning/subscription/topics/ios"},
	{"iOS & Swift - The Complete iOS App Development Bootcamp", "https://www.udemy.com/course/ios-13-app-development-bootcamp/"},
	{"Become an iOS Developer", "https://www.udacity.com/course/ios-developer-nanodegree--nd003"},
	{"iOS App Development with Swift Specialization", "https://www.coursera.org/specializations/app-development"},
	{"Mobile App Development with Swift", "https://www.edx.org/professional-certificate/curtinx-mobile-app-development-with-swift"},
	{"Swift Course by LinkedIn", "https://www.linkedin.com/learning/subscription/topics/swift-2"},
}

var uiuxCourses = []Course{
	{"Google UX Design Professional Certificate", "https://www.coursera.org/professional-certificates/google-ux-design"},
	{"UI / UX Design Specialization", "https://www.coursera.org/specializations/ui-ux-design"},
	{"The Complete App Design Course - UX, UI and Design Thinking", "https://www.udemy.com/course/the-complete-app-design-course-ux-and-ui-design/"},
	{"UX & Web Design Master Course: Strategy, Design, Development", "https://www.udemy.com/course/ux-web-design-master-course-strategy-design-development/"},
	{"DESIGN RULES: Principles + Practices for Great UI Design", "https://www.udemy.com/course/design-rules/"},
	{"Become a UX Designer by Udacity", "https://www.udacity.com/course/ux-designer-nanodegree--nd578"},
}

// categoryTracks maps category names to their course catalogs. Categories
// without an entry get no recommendations.
var categoryTracks = map[string][]Course{
	"Data Science":        dsCourses,
	"Web Designing":       webCourses,
	"Android Development": androidCourses,
	"IOS Development":     iosCourses,
	"UI-UX Development":   uiuxCourses,
	"Java Developer":      webCourses,
	"Python Developer":    dsCourses,
}

// Recommend returns up to n courses for the given category name, in random
// order. Unknown categories yield an empty list.
func Recommend(categoryName string, n int) []Course {
	track, ok := categoryTracks[categoryName]
	if !ok || n <= 0 {
		return []Course{}
	}

	shuffled := make([]Course, len(track))
	copy(shuffled, track)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// HasTrack reports whether the category has a course catalog.
func HasTrack(categoryName string) bool {
	_, ok := categoryTracks[categoryName]
	return ok
}
