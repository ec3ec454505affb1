package models

// Language identifies a programming language supported by the backend's
// execution sandbox. The constant values are the exact identifiers the
// backend expects on the wire.
type Language string

const (
	// Python is executed by the backend as Python 3.
	Python Language = "python"

	// Java is compiled and executed by the backend as Java 11+.
	Java Language = "java"

	// CPP is compiled and executed by the backend as C++17.
	CPP Language = "cpp"
)

// Languages lists every supported language in the order the UI presents them.
func Languages() []Language {
	return []Language{Python, Java, CPP}
}

// ParseLanguage maps a wire or form value to a Language.
// Returns false when the value names no supported language.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case Python, Java, CPP:
		return Language(s), true
	default:
		return "", false
	}
}

// Display returns the human-readable language name shown in page selects
// and result headings.
func (l Language) Display() string {
	switch l {
	case Python:
		return "Python"
	case Java:
		return "Java"
	case CPP:
		return "C++"
	default:
		return string(l)
	}
}

// StarterTemplate returns the hello-world program pre-filled into the code
// editor when the language is selected and no code has been written yet.
func (l Language) StarterTemplate() string {
	switch l {
	case Python:
		return pythonStarter
	case Java:
		return javaStarter
	case CPP:
		return cppStarter
	default:
		return ""
	}
}

const pythonStarter = `# Write your Python code here
def main():
    # Your solution goes here
    print("Hello, World!")

if __name__ == "__main__":
    main()`

const javaStarter = `public class Main {
    public static void main(String[] args) {
        // Your solution goes here
        System.out.println("Hello, World!");
    }
}`

const cppStarter = `#include <iostream>
using namespace std;

int main() {
    // Your solution goes here
    cout << "Hello, World!" << endl;
    return 0;
}`
